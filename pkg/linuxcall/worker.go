//go:build linux

package linuxcall

import (
	"errors"
	"runtime"
	"sync"
)

var (
	// ErrWorkerClosed is returned by Do after Close.
	ErrWorkerClosed = errors.New("linuxcall: worker closed")
	// ErrWorkerReentrant is returned by Do when called from a task already
	// running on the worker; waiting there would never finish.
	ErrWorkerReentrant = errors.New("linuxcall: Do called from the worker thread")
)

type task struct {
	fn   func()
	done chan struct{}
}

// Worker runs functions on one dedicated OS thread. Thread-scoped
// operations such as gettid, prctl(PR_SET_NAME) or tgkill need every call
// to land on the same thread, which a goroutine alone does not guarantee.
type Worker struct {
	tasks chan *task
	tid   int

	mu     sync.Mutex
	closed bool
	exited chan struct{}
}

// NewWorker starts a worker goroutine locked to its own thread.
func NewWorker() *Worker {
	w := &Worker{
		tasks:  make(chan *task),
		exited: make(chan struct{}),
	}
	ready := make(chan struct{})
	go w.loop(ready)
	<-ready
	return w
}

func (w *Worker) loop(ready chan<- struct{}) {
	runtime.LockOSThread()
	// never unlocked: the thread exits with the goroutine
	w.tid = Gettid()
	close(ready)
	defer close(w.exited)
	for t := range w.tasks {
		t.fn()
		close(t.done)
	}
}

// Tid is the kernel thread id every task runs on.
func (w *Worker) Tid() int { return w.tid }

// Do runs fn on the worker thread and waits for it to finish. Tasks run
// one at a time, so fn must not call Do on the same worker.
func (w *Worker) Do(fn func()) error {
	if Gettid() == w.tid {
		return ErrWorkerReentrant
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWorkerClosed
	}
	t := &task{fn: fn, done: make(chan struct{})}
	w.tasks <- t
	w.mu.Unlock()
	<-t.done
	return nil
}

// Close stops the worker and lets its thread exit.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.tasks)
	}
	w.mu.Unlock()
	<-w.exited
}
