package scanner

import (
	"sync"
)

// ScanResult records one open port discovered during a scan.
type ScanResult struct {
	Port   int    `json:"port"`
	Banner string `json:"banner,omitempty"`
}

// resultSet is the only state shared between workers. Appends are serialized
// by the mutex; reads happen only after every worker has exited.
type resultSet struct {
	mu      sync.Mutex
	results []ScanResult
}

func (r *resultSet) append(res ScanResult) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
}

func (r *resultSet) snapshot() []ScanResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ScanResult, len(r.results))
	copy(out, r.results)
	return out
}

// worker drains the queue until it pops a stop marker. A closed port, a
// timed-out probe, or a failed banner read for one port never aborts the
// loop; the worker acknowledges the item and moves on.
func worker(q *Queue, ip string, cfg Config, rs *resultSet, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		item := q.Pop()
		if item.Stop() {
			q.Done()
			return
		}

		if err := Probe(ip, item.Port(), cfg.Timeout); err == nil {
			res := ScanResult{
				Port:   item.Port(),
				Banner: ReadBanner(ip, item.Port(), cfg.BannerTimeout),
			}
			rs.append(res)
			if cfg.Notify != nil {
				cfg.Notify(res)
			}
		}
		q.Done()
	}
}
