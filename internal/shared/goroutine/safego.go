// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"raffle/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name, nil)
		fn()
	}()
}

// SafeGoErr runs fn on a recovered goroutine and delivers its result on the
// returned channel. A panic is delivered as an error. The channel is buffered
// so the goroutine never blocks when the caller stops listening.
func SafeGoErr(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer recoverAndLog(log, name, done)
		done <- fn()
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string, done chan<- error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if done != nil {
		done <- fmt.Errorf("goroutine %s panicked: %v", name, r)
	}
}
