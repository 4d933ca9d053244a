package validation

import (
	"net/netip"
	"strings"
)

// Address classes reported next to per-origin request counts.
const (
	ClassPublic   = "public"
	ClassPrivate  = "private"
	ClassLoopback = "loopback"
	ClassReserved = "reserved"
	ClassUnknown  = "unknown"
)

// NormalizeAddress strips ports, brackets and IPv4-in-IPv6 mapping so the
// same client always produces the same counter key. Values that are not IP
// literals are returned trimmed.
func NormalizeAddress(raw string) string {
	addr, ok := parseAddr(raw)
	if !ok {
		return strings.TrimSpace(raw)
	}
	return addr.String()
}

// ClassifyAddress tells operators whether a busy origin is internal traffic.
func ClassifyAddress(raw string) string {
	addr, ok := parseAddr(raw)
	if !ok {
		return ClassUnknown
	}

	switch {
	case addr.IsLoopback():
		return ClassLoopback
	case addr.IsPrivate(),
		addr.IsLinkLocalUnicast(),
		addr.IsLinkLocalMulticast():
		return ClassPrivate
	case addr.IsMulticast(),
		addr.IsUnspecified(),
		isReservedRange(addr):
		return ClassReserved
	}
	return ClassPublic
}

func parseAddr(raw string) (netip.Addr, bool) {
	host := strings.TrimSpace(raw)
	if ap, err := netip.ParseAddrPort(host); err == nil {
		return ap.Addr().Unmap(), true
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isReservedRange(addr netip.Addr) bool {
	if !addr.Is4() {
		return false
	}

	ip4 := addr.As4()

	// 100.64.0.0/10 (Carrier-grade NAT)
	if ip4[0] == 100 && ip4[1] >= 64 && ip4[1] <= 127 {
		return true
	}

	// 192.0.0.0/24 (IETF Protocol Assignments)
	if ip4[0] == 192 && ip4[1] == 0 && ip4[2] == 0 {
		return true
	}

	// 192.0.2.0/24, 198.51.100.0/24, 203.0.113.0/24 (documentation)
	if ip4[0] == 192 && ip4[1] == 0 && ip4[2] == 2 ||
		ip4[0] == 198 && ip4[1] == 51 && ip4[2] == 100 ||
		ip4[0] == 203 && ip4[1] == 0 && ip4[2] == 113 {
		return true
	}

	return false
}
