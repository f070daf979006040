//go:build (linux || darwin || windows) && (amd64 || arm64)

package unity

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/ebitengine/purego"

	unityjs "github.com/SimHacker/UnityJS"
	"github.com/SimHacker/UnityJS/internal/handles"
)

// ErrNotRegistered is returned when unregistering a listener that was never registered.
var ErrNotRegistered = errors.New("unity: device event listener not registered")

// The engine's device-event callback has no user-data argument, so a single
// trampoline serves every listener in the process.
var (
	deviceListeners handles.Table[unityjs.DeviceEventListener]

	deviceEventOnce sync.Once
	deviceEventCB   uintptr
)

// DeviceEventCallback returns the address of the process-wide device-event
// trampoline, void (*)(UnityGfxDeviceEventType).
func DeviceEventCallback() uintptr {
	deviceEventOnce.Do(func() {
		deviceEventCB = purego.NewCallback(deviceEventTrampoline)
	})
	return deviceEventCB
}

func deviceEventTrampoline(eventType uintptr) {
	ev := unityjs.DeviceEventType(int32(eventType))
	for _, l := range deviceListeners.Snapshot() {
		dispatchDeviceEvent(l, ev)
	}
}

func dispatchDeviceEvent(l unityjs.DeviceEventListener, ev unityjs.DeviceEventType) {
	defer func() {
		if r := recover(); r != nil {
			unityjs.Logger().Error("panic in device event listener",
				"event", ev,
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
		}
	}()
	l.OnGraphicsDeviceEvent(ev)
}

// Graphics wraps an IUnityGraphics pointer.
type Graphics struct {
	ptr uintptr

	getRenderer                   func() int32
	registerDeviceEventCallback   func(cb uintptr)
	unregisterDeviceEventCallback func(cb uintptr)

	mu        sync.Mutex
	listeners map[unityjs.DeviceEventListener]handles.Handle
}

var _ unityjs.Graphics = (*Graphics)(nil)

// NewGraphics wraps an IUnityGraphics pointer.
func NewGraphics(ptr uintptr) (*Graphics, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("%w: IUnityGraphics", ErrNullPointer)
	}
	g := &Graphics{
		ptr:       ptr,
		listeners: make(map[unityjs.DeviceEventListener]handles.Handle),
	}
	binds := []struct {
		fptr  any
		index int
		name  string
	}{
		{&g.getRenderer, slotGetRenderer, "GetRenderer"},
		{&g.registerDeviceEventCallback, slotRegisterDeviceEventCallback, "RegisterDeviceEventCallback"},
		{&g.unregisterDeviceEventCallback, slotUnregisterDeviceEventCallback, "UnregisterDeviceEventCallback"},
	}
	for _, b := range binds {
		if err := bindSlot(b.fptr, ptr, b.index, b.name); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Renderer returns the engine's current graphics backend.
func (g *Graphics) Renderer() unityjs.Renderer {
	return unityjs.Renderer(g.getRenderer())
}

// RegisterDeviceEventListener adds l to the device-event trampoline. The
// trampoline is registered with the engine when the first listener arrives.
func (g *Graphics) RegisterDeviceEventListener(l unityjs.DeviceEventListener) error {
	if l == nil {
		return fmt.Errorf("%w: listener", ErrNullPointer)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.listeners[l]; ok {
		return nil
	}
	g.listeners[l] = deviceListeners.Register(l)
	if len(g.listeners) == 1 {
		g.registerDeviceEventCallback(DeviceEventCallback())
	}
	return nil
}

// UnregisterDeviceEventListener removes l. The trampoline is unregistered from
// the engine when the last listener leaves.
func (g *Graphics) UnregisterDeviceEventListener(l unityjs.DeviceEventListener) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.listeners[l]
	if !ok {
		return ErrNotRegistered
	}
	delete(g.listeners, l)
	deviceListeners.Unregister(h)
	if len(g.listeners) == 0 {
		g.unregisterDeviceEventCallback(DeviceEventCallback())
	}
	return nil
}
