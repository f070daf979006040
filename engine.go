package unityjs

import "fmt"

// DeviceEventType mirrors UnityGfxDeviceEventType.
type DeviceEventType int32

// Graphics device events.
const (
	DeviceEventInitialize  DeviceEventType = 0
	DeviceEventShutdown    DeviceEventType = 1
	DeviceEventBeforeReset DeviceEventType = 2
	DeviceEventAfterReset  DeviceEventType = 3
)

func (t DeviceEventType) String() string {
	switch t {
	case DeviceEventInitialize:
		return "initialize"
	case DeviceEventShutdown:
		return "shutdown"
	case DeviceEventBeforeReset:
		return "before-reset"
	case DeviceEventAfterReset:
		return "after-reset"
	default:
		return fmt.Sprintf("device-event(%d)", int32(t))
	}
}

// DeviceEventListener receives graphics device lifecycle notifications.
type DeviceEventListener interface {
	OnGraphicsDeviceEvent(eventType DeviceEventType)
}

// Graphics is the engine's graphics interface (IUnityGraphics).
type Graphics interface {
	// Renderer returns the active graphics backend.
	Renderer() Renderer
	RegisterDeviceEventListener(l DeviceEventListener) error
	UnregisterDeviceEventListener(l DeviceEventListener) error
}

// Interfaces is the engine's interface registry (IUnityInterfaces).
type Interfaces interface {
	Graphics() (Graphics, error)
}
