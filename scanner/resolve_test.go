package scanner

import (
	"errors"
	"testing"
)

func TestResolve_LiteralIPv4(t *testing.T) {
	ip, err := Resolve("1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ip != "1.2.3.4" {
		t.Fatalf("got %s want 1.2.3.4", ip)
	}
}

func TestResolve_LiteralIPv6Rejected(t *testing.T) {
	_, err := Resolve("::1")
	if err == nil {
		t.Fatal("expected error for IPv6 literal")
	}
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error type = %T, want *ResolutionError", err)
	}
	if resErr.Target != "::1" {
		t.Fatalf("error target = %q, want ::1", resErr.Target)
	}
}

func TestResolve_UnresolvableHost(t *testing.T) {
	// .invalid is reserved and never resolves (RFC 2606).
	_, err := Resolve("portscope-does-not-exist.invalid")
	if err == nil {
		t.Fatal("expected error for unresolvable host")
	}
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error type = %T, want *ResolutionError", err)
	}
}

func TestReverseLookup_NeverEmpty(t *testing.T) {
	if got := ReverseLookup("127.0.0.1"); got == "" {
		t.Fatal("reverse lookup returned empty string, want name or \"unknown\"")
	}
	if got := ReverseLookup("0.0.0.0"); got == "" {
		t.Fatal("reverse lookup returned empty string, want name or \"unknown\"")
	}
}
