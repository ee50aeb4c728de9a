package dialog

import (
	"sync"
)

type mailbox struct {
	tasks   []func()
	running bool
}

// Dispatcher serializes task execution per user id: tasks submitted for the
// same user run one at a time in arrival order, tasks for different users
// run in parallel. A goroutine is spawned per active user and exits once its
// mailbox drains.
type Dispatcher struct {
	mu     sync.Mutex
	boxes  map[string]*mailbox
	wg     sync.WaitGroup
	closed bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{boxes: make(map[string]*mailbox)}
}

// Submit queues task for the user. Tasks submitted after Close are dropped.
func (d *Dispatcher) Submit(userID string, task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	box, ok := d.boxes[userID]
	if !ok {
		box = &mailbox{}
		d.boxes[userID] = box
	}
	box.tasks = append(box.tasks, task)

	if !box.running {
		box.running = true
		d.wg.Add(1)
		go d.drain(userID, box)
	}
}

func (d *Dispatcher) drain(userID string, box *mailbox) {
	defer d.wg.Done()

	for {
		d.mu.Lock()
		if len(box.tasks) == 0 {
			box.running = false
			delete(d.boxes, userID)
			d.mu.Unlock()
			return
		}
		task := box.tasks[0]
		box.tasks = box.tasks[1:]
		d.mu.Unlock()

		task()
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
