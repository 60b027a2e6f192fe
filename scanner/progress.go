package scanner

import (
	"fmt"
	"io"
	"time"
)

// progressInterval is how often the monitor samples queue depth.
const progressInterval = 100 * time.Millisecond

// monitor periodically samples queue depth and rewrites a completion
// percentage line on w until done is closed. It only reads the queue;
// stopping it early has no effect on scan results.
func monitor(q *Queue, total int, w io.Writer, done <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Fprintf(w, "\rProgress: 100.00%%\n")
			return
		case <-ticker.C:
			remaining := q.Size()
			if remaining < 0 {
				remaining = 0
			}
			percent := float64(total-remaining) / float64(total) * 100
			fmt.Fprintf(w, "\rProgress: %.2f%%", percent)
		}
	}
}
