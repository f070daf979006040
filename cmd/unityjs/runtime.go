//go:build android && cgo

package main

import (
	"fmt"
	"runtime/debug"
	"sync"

	unityjs "github.com/SimHacker/UnityJS"
	"github.com/SimHacker/UnityJS/internal/platform"
	"github.com/SimHacker/UnityJS/internal/unity"
)

var (
	runtimeOnce   sync.Once
	runtimeBridge *unityjs.Bridge
)

// getBridge returns the process bridge, creating it and wiring the render-event
// trampoline to it on first use.
func getBridge() *unityjs.Bridge {
	runtimeOnce.Do(func() {
		unityjs.SetLogger(unityjs.LoggerFromEnv(logcatWriter{}))
		runtimeBridge = unityjs.New(unityjs.ConfigFromEnv())
		unity.SetRenderEventHandler(runtimeBridge)
		unityjs.Logger().Info("unityjs plugin initialized",
			"library", platform.PluginLibrary(),
			"platform", platform.Describe())
	})
	return runtimeBridge
}

// safeCall runs fn and recovers any panic, returning it as an error.
// Every exported entry point goes through it so that a Go panic never unwinds
// into the JVM or the engine.
func safeCall(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			unityjs.Logger().Error("panic in exported call",
				"op", op,
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic in %s: %v", op, r)
		}
	}()
	if err = fn(); err != nil {
		unityjs.Logger().Warn("exported call failed", "op", op, "err", err)
	}
	return err
}
