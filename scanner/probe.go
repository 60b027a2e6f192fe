package scanner

import (
	"net"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultProbeTimeout bounds a single connect attempt.
	DefaultProbeTimeout = 500 * time.Millisecond
	// DefaultBannerTimeout bounds the banner-grab connection and read.
	DefaultBannerTimeout = time.Second
	// bannerLimit caps how much greeting data is read from a service.
	bannerLimit = 1024
)

// Probe attempts a timed TCP connect to ip:port. A nil error means the
// handshake completed and the port is open. The connection is closed before
// returning on every path; callers that want a banner must dial again.
func Probe(ip string, port int, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(ip, strconv.Itoa(port)), timeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}

// ReadBanner opens a fresh connection to ip:port and reads the initial
// greeting, if any, within the timeout. It returns the trimmed banner text,
// or "" when the service stays silent, sends non-text data, or the
// connection fails. Banner absence is never an error.
func ReadBanner(ip string, port int, timeout time.Duration) string {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(ip, strconv.Itoa(port)), timeout)
	if err != nil {
		return ""
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, bannerLimit)
	n, _ := conn.Read(buf)
	if n <= 0 {
		return ""
	}
	if !utf8.Valid(buf[:n]) {
		return ""
	}
	return strings.TrimSpace(string(buf[:n]))
}
