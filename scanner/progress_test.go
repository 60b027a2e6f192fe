package scanner

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRun_ReportsProgress(t *testing.T) {
	ports := startFixture(t, 1)

	var buf bytes.Buffer
	_, err := Run(Config{
		Target:        "127.0.0.1",
		StartPort:     ports[0],
		EndPort:       ports[0],
		Workers:       1,
		Timeout:       250 * time.Millisecond,
		BannerTimeout: 100 * time.Millisecond,
		Progress:      &buf,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Progress: 100.00%") {
		t.Fatalf("progress output %q missing final 100%% line", out)
	}
}

func TestMonitor_StopsWhenDone(t *testing.T) {
	q := NewQueue(4)
	var buf bytes.Buffer

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		monitor(q, 4, &buf, done)
	}()

	close(done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after done was closed")
	}
}
