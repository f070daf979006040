//go:build linux && (amd64 || arm64)

package jni

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	unityjs "github.com/SimHacker/UnityJS"
)

// VM wraps a JavaVM pointer.
//
// Env and Detach act on the calling OS thread. Callers that are not running
// inside a native callback must hold runtime.LockOSThread around them.
type VM struct {
	ptr     uintptr
	version int32

	attachCurrentThread func(vm uintptr, penv unsafe.Pointer, args unsafe.Pointer) int32
	detachCurrentThread func(vm uintptr) int32
	getEnv              func(vm uintptr, penv unsafe.Pointer, version int32) int32

	mu       sync.Mutex
	attached map[int]bool // OS thread ids attached by this VM wrapper
}

var _ unityjs.VM = (*VM)(nil)

// NewVM wraps the JavaVM received by JNI_OnLoad.
func NewVM(ptr uintptr) (*VM, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("%w: JavaVM", ErrNullPointer)
	}
	table := *(*uintptr)(unsafe.Pointer(ptr))
	if table == 0 {
		return nil, fmt.Errorf("%w: JNIInvokeInterface", ErrNullPointer)
	}

	vm := &VM{
		ptr:      ptr,
		version:  int32(unityjs.JNIVersion1_6),
		attached: make(map[int]bool),
	}
	if err := bindSlot(&vm.attachCurrentThread, table, slotAttachCurrentThread, "AttachCurrentThread"); err != nil {
		return nil, err
	}
	if err := bindSlot(&vm.detachCurrentThread, table, slotDetachCurrentThread, "DetachCurrentThread"); err != nil {
		return nil, err
	}
	if err := bindSlot(&vm.getEnv, table, slotGetEnv, "GetEnv"); err != nil {
		return nil, err
	}
	return vm, nil
}

// Ptr returns the raw JavaVM pointer.
func (vm *VM) Ptr() uintptr { return vm.ptr }

// Env returns the JNIEnv of the calling thread. A thread unknown to the VM
// (such as the engine's render thread on first use) is attached.
func (vm *VM) Env() (unityjs.Env, error) {
	var envPtr uintptr
	rc := vm.getEnv(vm.ptr, unsafe.Pointer(&envPtr), vm.version)
	switch rc {
	case OK:
	case EDetached:
		if rc = vm.attachCurrentThread(vm.ptr, unsafe.Pointer(&envPtr), nil); rc != OK {
			return nil, &Error{Op: "AttachCurrentThread", Code: rc}
		}
		tid := unix.Gettid()
		vm.mu.Lock()
		vm.attached[tid] = true
		vm.mu.Unlock()
		unityjs.Logger().Debug("attached thread to JavaVM", "tid", tid)
	default:
		return nil, &Error{Op: "GetEnv", Code: rc}
	}
	return EnvFromPtr(envPtr)
}

// Detach detaches the calling thread if Env attached it. Threads attached by
// the runtime itself are left alone.
func (vm *VM) Detach() error {
	tid := unix.Gettid()
	vm.mu.Lock()
	ours := vm.attached[tid]
	delete(vm.attached, tid)
	vm.mu.Unlock()

	if !ours {
		return nil
	}
	if rc := vm.detachCurrentThread(vm.ptr); rc != OK {
		return &Error{Op: "DetachCurrentThread", Code: rc}
	}
	return nil
}

// Attached returns the number of threads currently attached through Env.
func (vm *VM) Attached() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.attached)
}
