//go:build (linux || darwin || windows) && (amd64 || arm64)

// Package unity binds the Unity native-plugin interfaces (IUnityInterfaces,
// IUnityGraphics) using purego and provides the native trampolines the engine
// calls back into: the graphics device-event callback and the render-event
// function.
package unity

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	unityjs "github.com/SimHacker/UnityJS"
	"github.com/SimHacker/UnityJS/internal/platform"
)

// Interface GUIDs (UNITY_REGISTER_INTERFACE_GUID).
const (
	GraphicsGUIDHigh uint64 = 0x7CBA0A9CA4DDB544
	GraphicsGUIDLow  uint64 = 0x8C5AD4926EB17B11
)

// IUnityInterfaces slot indices.
const (
	slotGetInterface           = 0
	slotRegisterInterface      = 1
	slotGetInterfaceSplit      = 2
	slotRegisterInterfaceSplit = 3

	// InterfacesSlots is the number of function pointers in IUnityInterfaces.
	InterfacesSlots = 4
)

// IUnityGraphics slot indices.
const (
	slotGetRenderer                   = 0
	slotRegisterDeviceEventCallback   = 1
	slotUnregisterDeviceEventCallback = 2
	// Slot 3, ReserveEventIDRange, is absent on older engines and unused:
	// render event ids are fixed by the managed side.

	// GraphicsSlots is the number of function pointers in IUnityGraphics.
	GraphicsSlots = 4
)

var (
	// ErrNullPointer is returned when a null interface pointer or slot is encountered.
	ErrNullPointer = errors.New("unity: null pointer")

	// ErrInterfaceNotFound is returned when the engine does not provide an interface.
	ErrInterfaceNotFound = errors.New("unity: interface not found")
)

// Unity interfaces are plain structs of function pointers, not vtables.
func slot(iface uintptr, index int) uintptr {
	return *(*uintptr)(unsafe.Add(unsafe.Pointer(iface), uintptr(index)*platform.PointerSize))
}

func bindSlot(fptr any, iface uintptr, index int, name string) error {
	addr := slot(iface, index)
	if addr == 0 {
		return fmt.Errorf("%w: %s slot %d", ErrNullPointer, name, index)
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// Interfaces wraps an IUnityInterfaces pointer.
type Interfaces struct {
	ptr               uintptr
	getInterfaceSplit func(guidHigh, guidLow uint64) uintptr
}

var _ unityjs.Interfaces = (*Interfaces)(nil)

// NewInterfaces wraps the IUnityInterfaces received by UnityPluginLoad.
func NewInterfaces(ptr uintptr) (*Interfaces, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("%w: IUnityInterfaces", ErrNullPointer)
	}
	ifaces := &Interfaces{ptr: ptr}
	if err := bindSlot(&ifaces.getInterfaceSplit, ptr, slotGetInterfaceSplit, "GetInterfaceSplit"); err != nil {
		return nil, err
	}
	return ifaces, nil
}

// Get returns the raw interface registered under the GUID, or 0.
func (i *Interfaces) Get(guidHigh, guidLow uint64) uintptr {
	return i.getInterfaceSplit(guidHigh, guidLow)
}

// Graphics returns the engine's IUnityGraphics.
func (i *Interfaces) Graphics() (unityjs.Graphics, error) {
	ptr := i.Get(GraphicsGUIDHigh, GraphicsGUIDLow)
	if ptr == 0 {
		return nil, fmt.Errorf("%w: IUnityGraphics", ErrInterfaceNotFound)
	}
	return NewGraphics(ptr)
}
