package scanner

import (
	"net"
	"testing"
	"time"
)

func TestProbe_OpenAndClosed(t *testing.T) {
	// start a listener to get an open port
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port

	if err := Probe("127.0.0.1", port, time.Second); err != nil {
		t.Fatalf("expected open port, got error: %v", err)
	}

	// close listener so the port refuses connections
	_ = l.Close()
	time.Sleep(50 * time.Millisecond)

	if err := Probe("127.0.0.1", port, 500*time.Millisecond); err == nil {
		t.Fatal("expected error probing a closed port")
	}
}

func TestReadBanner_Greeting(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			_, _ = conn.Write([]byte("220 test-ftpd ready\r\n"))
			_ = conn.Close()
		}
	}()

	banner := ReadBanner("127.0.0.1", port, time.Second)
	if banner != "220 test-ftpd ready" {
		t.Fatalf("banner = %q, want %q", banner, "220 test-ftpd ready")
	}
}

func TestReadBanner_SilentService(t *testing.T) {
	// No accept loop: the handshake still completes via the listen backlog,
	// but no greeting ever arrives.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	if banner := ReadBanner("127.0.0.1", port, 200*time.Millisecond); banner != "" {
		t.Fatalf("banner = %q for silent service, want empty", banner)
	}
}

func TestReadBanner_ClosedPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	time.Sleep(50 * time.Millisecond)

	if banner := ReadBanner("127.0.0.1", port, 200*time.Millisecond); banner != "" {
		t.Fatalf("banner = %q for closed port, want empty", banner)
	}
}
