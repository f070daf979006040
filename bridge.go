// Package unityjs bridges the Unity native-plugin ABI and the Java runtime on
// Android. It forwards graphics device lifecycle events, relays
// target/method/message triples from Java to the engine's send-message
// callback, and runs the Java render-update hook from the engine's render thread.
//
// All state lives in a Bridge. The cmd/unityjs shared library owns the one
// Bridge of the process and feeds it the host handles it receives through the
// exported entry points; tests create as many bridges as they need.
package unityjs

import (
	"log/slog"
	"sync"

	"golang.org/x/time/rate"
)

// Bridge holds the handles captured from both hosts.
//
// Bridge is safe for concurrent use. mu is never held while calling into
// either host, so host callbacks may re-enter the bridge. callMu is read-held
// for the whole render-update call and write-held while the cached class
// reference is replaced or deleted, so a reference in use is never freed.
type Bridge struct {
	cfg Config

	missingSender *rate.Sometimes
	renderFailure *rate.Sometimes

	callMu sync.RWMutex

	mu       sync.RWMutex
	vm       VM
	ifaces   Interfaces
	graphics Graphics
	renderer Renderer
	sender   Sender
	entry    entryPoint
}

// entryPoint is the cached render-update class and static method.
// class is a global reference owned by the bridge.
type entryPoint struct {
	class  Class
	method MethodID
	err    error
}

// New creates a bridge. Zero fields of cfg take their DefaultConfig values,
// except TraceInterval where zero means trace every occurrence.
func New(cfg Config) *Bridge {
	cfg = cfg.withDefaults()
	return &Bridge{
		cfg:           cfg,
		missingSender: newSometimes(cfg),
		renderFailure: newSometimes(cfg),
		renderer:      RendererNull,
	}
}

func newSometimes(cfg Config) *rate.Sometimes {
	if cfg.TraceInterval == 0 {
		return &rate.Sometimes{Every: 1}
	}
	return &rate.Sometimes{Interval: cfg.TraceInterval}
}

// Config returns the bridge configuration.
func (b *Bridge) Config() Config {
	return b.cfg
}

func (b *Bridge) logger() *slog.Logger {
	if b.cfg.Logger != nil {
		return b.cfg.Logger
	}
	return Logger()
}

// Loaded reports whether the managed runtime is attached to the bridge.
func (b *Bridge) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.vm != nil
}
