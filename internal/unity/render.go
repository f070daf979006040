//go:build (linux || darwin || windows) && (amd64 || arm64)

package unity

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"

	unityjs "github.com/SimHacker/UnityJS"
)

// RenderEventHandler receives render events on the engine's render thread.
type RenderEventHandler interface {
	OnRenderEvent(id unityjs.RenderEventID) error
}

type handlerBox struct {
	h RenderEventHandler
}

var (
	renderHandler atomic.Pointer[handlerBox]

	renderEventOnce sync.Once
	renderEventFunc uintptr
)

// SetRenderEventHandler installs h as the target of RenderEventFunc.
// Pass nil to make render events no-ops.
func SetRenderEventHandler(h RenderEventHandler) {
	if h == nil {
		renderHandler.Store(nil)
		return
	}
	renderHandler.Store(&handlerBox{h: h})
}

// RenderEventFunc returns the address of the process-wide render-event
// function, void (*)(int eventId), for GL.IssuePluginEvent. The address is
// created on first use and is stable for the life of the process.
func RenderEventFunc() uintptr {
	renderEventOnce.Do(func() {
		renderEventFunc = purego.NewCallback(renderEventTrampoline)
	})
	return renderEventFunc
}

func renderEventTrampoline(eventID uintptr) {
	box := renderHandler.Load()
	if box == nil {
		return
	}
	id := unityjs.RenderEventID(int32(eventID))
	defer func() {
		if r := recover(); r != nil {
			unityjs.Logger().Error("panic in render event handler",
				"event", id,
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
		}
	}()
	// The handler logs its own failures; the engine has no way to receive them.
	_ = box.h.OnRenderEvent(id)
}
