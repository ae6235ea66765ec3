// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Deque is a FIFO event queue that is safe for concurrent use.
// Window-system callbacks [Deque.Send] events and the render loop
// drains them with [Deque.NextEvent] between frames.
// A non-unique event is merged into the last queued event when that
// event has the same type, so a burst of moves or wheel ticks costs
// one handler call per frame.
// The zero value is ready to use.
type Deque struct {
	mu     sync.Mutex
	events []Event

	// Compressed counts merged events, for tracing.
	Compressed int
}

// Send adds an event to the end of the queue.
func (q *Deque) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && !ev.IsUnique() {
		last := q.events[n-1]
		if last.Type() == ev.Type() {
			last.merge(ev)
			q.Compressed++
			if TraceEventCompression {
				println("compressed", ev.String())
			}
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Deque) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Len returns the length of the queue.
func (q *Deque) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
