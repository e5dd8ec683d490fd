package app

import (
	"encoding/json"
	"log"
	"sync"

	"slideshowfx-live/internal/protocol"
)

// Broadcaster fans a marshaled frame out to every connected attendee.
type Broadcaster interface {
	Broadcast(frame []byte)
}

// Dispatcher is the single ordering authority for outbound events. State
// machines publish frames while holding their own lock; Publish only appends
// to an in-memory queue, so no lock is ever held across network I/O. A lone
// forwarder goroutine drains the queue in FIFO order, which makes broadcast
// order equal commit order for every attendee.
type Dispatcher struct {
	sink Broadcaster

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []protocol.Frame
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Broadcaster) *Dispatcher {
	d := &Dispatcher{
		sink: sink,
		done: make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	go d.forward()
	return d
}

// Publish enqueues a frame for broadcast. It never blocks and never drops;
// frames published after Close are discarded.
func (d *Dispatcher) Publish(frame protocol.Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.queue = append(d.queue, frame)
	d.cond.Signal()
}

// Close drains the remaining queue and stops the forwarder.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	d.cond.Signal()
	d.mu.Unlock()
	<-d.done
}

func (d *Dispatcher) forward() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 && d.closed {
			d.mu.Unlock()
			return
		}
		batch := d.queue
		d.queue = nil
		d.mu.Unlock()

		for _, frame := range batch {
			raw, err := json.Marshal(frame)
			if err != nil {
				log.Printf("dispatcher: dropping unmarshalable frame for %s: %v", frame.Service, err)
				continue
			}
			d.sink.Broadcast(raw)
		}
	}
}
