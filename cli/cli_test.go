package cli

import (
	"strings"
	"testing"
)

func TestParsePortRange_Valid(t *testing.T) {
	cases := map[string][2]int{
		"1-1024":    {1, 1024},
		"22-22":     {22, 22},
		"1-65535":   {1, 65535},
		"8000-8100": {8000, 8100},
	}
	for spec, want := range cases {
		t.Run(spec, func(t *testing.T) {
			start, end, err := parsePortRange(spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != want[0] || end != want[1] {
				t.Fatalf("got %d-%d want %d-%d", start, end, want[0], want[1])
			}
		})
	}
}

func TestParsePortRange_Invalid(t *testing.T) {
	cases := []string{
		"",
		"80",
		"a-b",
		"0-10",
		"1-70000",
		"1024-1",
		"1-2-3",
	}
	for _, spec := range cases {
		t.Run(spec, func(t *testing.T) {
			if _, _, err := parsePortRange(spec); err == nil {
				t.Fatalf("expected error for spec %q", spec)
			}
		})
	}
}

func TestPromptScanInput(t *testing.T) {
	in := strings.NewReader("scanme.test\n1\n1024\n100\n")
	target, start, end, workers, err := promptScanInput(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target != "scanme.test" || start != 1 || end != 1024 || workers != 100 {
		t.Fatalf("got %q %d-%d workers=%d", target, start, end, workers)
	}
}

func TestPromptScanInput_InvalidRange(t *testing.T) {
	in := strings.NewReader("scanme.test\n100\n10\n50\n")
	if _, _, _, _, err := promptScanInput(in); err == nil {
		t.Fatal("expected error for reversed range")
	}
}
