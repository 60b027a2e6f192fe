package scanner

import (
	"sync"
	"sync/atomic"
)

// WorkItem is a single entry in the scan queue: either a port to probe or a
// stop marker that terminates the worker popping it.
type WorkItem struct {
	port int
	stop bool
}

// PortItem returns a work item for a single port.
func PortItem(port int) WorkItem { return WorkItem{port: port} }

// StopItem returns the stop marker. One is pushed per worker once the queue
// has drained.
func StopItem() WorkItem { return WorkItem{stop: true} }

// Port returns the port carried by a non-stop item.
func (w WorkItem) Port() int { return w.port }

// Stop reports whether this item tells the worker to exit.
func (w WorkItem) Stop() bool { return w.stop }

// Queue is a counted, multi-consumer work queue. Every pushed item must be
// popped exactly once and acknowledged with Done once processing finishes;
// AwaitDrained blocks until the counts balance. The coordinator pushes all
// port items before workers start and stop markers only after AwaitDrained
// returns, so Push never blocks within a correctly sized queue.
type Queue struct {
	items   chan WorkItem
	pending sync.WaitGroup
	depth   atomic.Int64
}

// NewQueue creates a queue able to hold capacity items without blocking.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make(chan WorkItem, capacity)}
}

// Push enqueues an item.
func (q *Queue) Push(item WorkItem) {
	q.pending.Add(1)
	q.depth.Add(1)
	q.items <- item
}

// Pop blocks until an item is available and removes it from the queue.
func (q *Queue) Pop() WorkItem {
	item := <-q.items
	q.depth.Add(-1)
	return item
}

// Done acknowledges that a popped item has been fully processed. Every Pop
// must be paired with exactly one Done.
func (q *Queue) Done() {
	q.pending.Done()
}

// Size reports how many items have been pushed but not yet popped.
func (q *Queue) Size() int {
	return int(q.depth.Load())
}

// AwaitDrained blocks until every pushed item has been popped and
// acknowledged. It must be called before any stop markers are pushed, so a
// worker cannot exit while a sibling still holds unprocessed ports.
func (q *Queue) AwaitDrained() {
	q.pending.Wait()
}
