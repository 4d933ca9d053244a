package requestid_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mallapi/internal/requestid"
)

func TestNew(t *testing.T) {
	g, err := requestid.New(0)
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestNext_Sequence(t *testing.T) {
	g, err := requestid.New(0)
	require.NoError(t, err)

	assert.Equal(t, "bMZn4Y", g.Next())
	assert.Equal(t, "UkLWZg", g.Next())
}

func TestNew_Start(t *testing.T) {
	g, err := requestid.New(12345)
	require.NoError(t, err)

	assert.Equal(t, "A6das1", g.Next())
}

func TestEncode_LargeID(t *testing.T) {
	g, err := requestid.New(0)
	require.NoError(t, err)

	id, err := g.Encode(1_000_000_000)
	require.NoError(t, err)
	assert.Len(t, id, 7)
}

func TestNext_URLSafe(t *testing.T) {
	g, err := requestid.New(1_700_000_000)
	require.NoError(t, err)

	urlSafePattern := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	for range 100 {
		assert.Regexp(t, urlSafePattern, g.Next())
	}
}

func TestNext_ConcurrentUnique(t *testing.T) {
	g, err := requestid.New(0)
	require.NoError(t, err)

	const n = 1000
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
