package scanner

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ResolutionError reports a target that could not be resolved to an IPv4
// address. It is the only error that aborts a whole scan.
type ResolutionError struct {
	Target string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve target %q: %v", e.Target, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolve returns the first IPv4 address for target. The target may be a
// hostname or an IP literal.
func Resolve(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
		return "", &ResolutionError{Target: target, Err: errors.New("IPv6 addresses are not supported")}
	}

	ips, err := net.LookupIP(target)
	if err != nil {
		return "", &ResolutionError{Target: target, Err: err}
	}
	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}
	return "", &ResolutionError{Target: target, Err: errors.New("no A records found for host")}
}

// ReverseLookup returns the PTR name for ip, or "unknown" when none exists.
// Failures here are purely informational and never affect the scan.
func ReverseLookup(ip string) string {
	names, err := net.LookupAddr(ip)
	if err != nil || len(names) == 0 {
		return "unknown"
	}
	return strings.TrimSuffix(names[0], ".")
}
