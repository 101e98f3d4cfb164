package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the function run on a recovered panic, typically restoring the
// terminal before reporting. nil restores the default.
func SetCrashHandler(fn func(r any)) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// HandleCrash dispatches a recovered panic value to the installed handler, or prints the
// stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r)
		return
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
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
