package requestid

import (
	"strconv"
	"sync/atomic"

	"github.com/sqids/sqids-go"
)

// Generator hands out short, URL-safe request IDs from a monotonically
// increasing sequence.
type Generator struct {
	sqids *sqids.Sqids
	seq   atomic.Uint64
}

// New returns a generator whose first ID encodes start. Seeding start from
// the boot time keeps IDs distinct across restarts.
func New(start uint64) (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	g := &Generator{sqids: s}
	g.seq.Store(start)
	return g, nil
}

func (g *Generator) Encode(n uint64) (string, error) {
	return g.sqids.Encode([]uint64{n})
}

// Next returns the ID for the next sequence number.
func (g *Generator) Next() string {
	n := g.seq.Add(1) - 1
	id, err := g.Encode(n)
	if err != nil {
		return strconv.FormatUint(n, 36)
	}
	return id
}
