package unityjs

import (
	"log/slog"
	"os"
	"time"
)

// Default render-update entry point on the managed side.
const (
	DefaultEntryClass     = "com/groundupsoftware/unityjs/CUnityJSPlugin"
	DefaultEntryMethod    = "RenderUpdateUnityJSPlugins"
	DefaultEntrySignature = "()V"
)

// DefaultTraceInterval bounds how often the missing-callback trace is logged.
const DefaultTraceInterval = 5 * time.Second

// Environment variables read by ConfigFromEnv.
const (
	EntryClassEnv    = "UNITYJS_ENTRY_CLASS"
	EntryMethodEnv   = "UNITYJS_ENTRY_METHOD"
	TraceIntervalEnv = "UNITYJS_TRACE_INTERVAL"
)

// Config configures a Bridge.
type Config struct {
	// EntryClass is the JNI class name (slash separated) holding the render-update method.
	EntryClass string
	// EntryMethod is a static method taking no arguments and returning void.
	EntryMethod    string
	EntrySignature string

	// TraceInterval is the minimum spacing between repeated per-call traces.
	// Zero logs every occurrence.
	TraceInterval time.Duration

	// Logger overrides the package logger. Nil uses Logger().
	Logger *slog.Logger
}

// DefaultConfig returns the configuration matching the shipped Java plugin.
func DefaultConfig() Config {
	return Config{
		EntryClass:     DefaultEntryClass,
		EntryMethod:    DefaultEntryMethod,
		EntrySignature: DefaultEntrySignature,
		TraceInterval:  DefaultTraceInterval,
	}
}

// ConfigFromEnv returns DefaultConfig with overrides from the environment.
// Malformed durations are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EntryClassEnv); v != "" {
		cfg.EntryClass = v
	}
	if v := os.Getenv(EntryMethodEnv); v != "" {
		cfg.EntryMethod = v
	}
	if v := os.Getenv(TraceIntervalEnv); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.TraceInterval = d
		}
	}
	return cfg
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.EntryClass == "" {
		c.EntryClass = def.EntryClass
	}
	if c.EntryMethod == "" {
		c.EntryMethod = def.EntryMethod
	}
	if c.EntrySignature == "" {
		c.EntrySignature = def.EntrySignature
	}
	if c.TraceInterval < 0 {
		c.TraceInterval = 0
	}
	return c
}
