package log

import (
	"sync"
	"sync/atomic"
)

// Transporter is a log output destination (stdout, file, remote collector).
type Transporter interface {
	// Name identifies the transporter.
	Name() string

	// Write sends one entry to the destination.
	Write(entry Entry) error

	// Close releases any resources. Write must not be called after Close.
	Close() error
}

// Buffer decouples logging call sites from transporter I/O. Entries are
// queued on a bounded channel and delivered by a single worker; when the
// queue is full the new entry is dropped and counted.
type Buffer struct {
	entries      chan Entry
	transporters []Transporter
	dropped      atomic.Int64
	closed       atomic.Bool
	wg           sync.WaitGroup
}

// NewBuffer creates a buffer with the given queue capacity.
func NewBuffer(capacity int, transporters ...Transporter) *Buffer {
	b := &Buffer{
		entries:      make(chan Entry, capacity),
		transporters: transporters,
	}
	b.wg.Add(1)
	go b.worker()
	return b
}

// Send queues an entry for delivery. Never blocks; a full queue drops the
// entry. Safe for concurrent use.
func (b *Buffer) Send(entry Entry) {
	if b.closed.Load() {
		return
	}
	select {
	case b.entries <- entry:
	default:
		b.dropped.Add(1)
	}
}

// DroppedCount reports entries dropped due to a full queue.
func (b *Buffer) DroppedCount() int64 {
	return b.dropped.Load()
}

// Close stops accepting entries, flushes the queue, and closes the
// transporters. Safe to call more than once.
func (b *Buffer) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	close(b.entries)
	b.wg.Wait()
	for _, t := range b.transporters {
		t.Close()
	}
}

func (b *Buffer) worker() {
	defer b.wg.Done()
	for entry := range b.entries {
		for _, t := range b.transporters {
			// A failing transporter must not take the others down.
			_ = t.Write(entry)
		}
	}
}
