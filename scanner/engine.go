package scanner

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Config describes a single scan run.
type Config struct {
	Target    string
	StartPort int
	EndPort   int
	Workers   int

	// Timeout bounds each connect probe; zero means DefaultProbeTimeout.
	Timeout time.Duration
	// BannerTimeout bounds each banner grab; zero means DefaultBannerTimeout.
	BannerTimeout time.Duration

	// Notify, when set, is called from worker goroutines for every open port
	// as it is discovered. It must be safe for concurrent use.
	Notify func(ScanResult)
	// Progress, when set, receives the live completion-percentage line.
	Progress io.Writer
}

func (c *Config) validate() error {
	if c.Target == "" {
		return fmt.Errorf("target is required")
	}
	if c.StartPort < 1 || c.EndPort > 65535 {
		return fmt.Errorf("ports must be within 1-65535 range")
	}
	if c.StartPort > c.EndPort {
		return fmt.Errorf("start port must be less than or equal to end port")
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultProbeTimeout
	}
	if c.BannerTimeout <= 0 {
		c.BannerTimeout = DefaultBannerTimeout
	}
	return nil
}

// Report is the immutable outcome of a completed scan. Open ports are sorted
// ascending so repeated scans of the same host compare equal.
type Report struct {
	Target     string       `json:"target"`
	IP         string       `json:"ip"`
	ReverseDNS string       `json:"reverse_dns,omitempty"`
	Open       []ScanResult `json:"open"`
	OSGuess    string       `json:"os_guess"`
	ScannedAt  time.Time    `json:"scanned_at"`
}

// OpenPorts returns the sorted port numbers from the report.
func (r *Report) OpenPorts() []int {
	ports := make([]int, len(r.Open))
	for i, res := range r.Open {
		ports[i] = res.Port
	}
	return ports
}

// Run executes a full scan and blocks until every worker has exited.
//
// The shutdown protocol is strict: the coordinator waits for the queue to
// drain (every port popped and acknowledged), then pushes one stop marker
// per worker, then joins all workers. Only after the join does it read the
// shared results, so no append can race with the final snapshot.
func Run(cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Resolution failure aborts before any queue work happens.
	ip, err := Resolve(cfg.Target)
	if err != nil {
		return nil, err
	}

	total := cfg.EndPort - cfg.StartPort + 1
	q := NewQueue(total + cfg.Workers)
	for port := cfg.StartPort; port <= cfg.EndPort; port++ {
		q.Push(PortItem(port))
	}

	rs := &resultSet{}
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go worker(q, ip, cfg, rs, &wg)
	}

	monDone := make(chan struct{})
	monStopped := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			defer close(monStopped)
			monitor(q, total, cfg.Progress, monDone)
		}()
	} else {
		close(monStopped)
	}

	q.AwaitDrained()
	close(monDone)
	<-monStopped

	for i := 0; i < cfg.Workers; i++ {
		q.Push(StopItem())
	}
	wg.Wait()

	open := rs.snapshot()
	sort.Slice(open, func(i, j int) bool { return open[i].Port < open[j].Port })

	report := &Report{
		Target:     cfg.Target,
		IP:         ip,
		ReverseDNS: ReverseLookup(ip),
		Open:       open,
		ScannedAt:  time.Now().UTC(),
	}
	report.OSGuess = GuessOS(report.OpenPorts())
	return report, nil
}
