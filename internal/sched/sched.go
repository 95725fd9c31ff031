// Package sched provides the timer facility used by the animation engine.
//
// Every implementation runs callbacks one at a time, and a callback whose
// handle has been cancelled never runs afterwards.
package sched

import "time"

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs fn every interval until the returned handle is cancelled.
type Scheduler interface {
	Schedule(fn func(), every time.Duration) Handle
	Cancel(h Handle)
}
