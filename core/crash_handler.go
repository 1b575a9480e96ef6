package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked on panic inside goroutines spawned via Go.
// Defaults to a plain stderr dump; the host replaces it with one that
// restores the terminal before printing
var crashHandler atomic.Value // func(any)

func init() {
	crashHandler.Store(func(r any) {
		fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Stderr.Sync()
		os.Exit(1)
	})
}

// SetCrashHandler replaces the global panic handler for spawned goroutines
func SetCrashHandler(handler func(r any)) {
	if handler != nil {
		crashHandler.Store(handler)
	}
}

// HandleCrash runs the installed panic handler
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashHandler.Load().(func(any))(r)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
