//go:build linux && (amd64 || arm64)

// Package jni binds the JavaVM invoke interface and the JNIEnv native
// interface using purego. Both are tables of C function pointers, so each slot
// is bound once per table with purego.RegisterFunc and no C code is needed.
package jni

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/SimHacker/UnityJS/internal/platform"
)

// JNI return codes.
const (
	OK        int32 = 0
	Err       int32 = -1
	EDetached int32 = -2
	EVersion  int32 = -3
)

// JNINativeInterface slot indices (jni.h, JNI 1.6).
const (
	slotFindClass             = 6
	slotExceptionDescribe     = 16
	slotExceptionClear        = 17
	slotNewGlobalRef          = 21
	slotDeleteGlobalRef       = 22
	slotDeleteLocalRef        = 23
	slotGetStaticMethodID     = 113
	slotCallStaticVoidMethodA = 143
	slotGetStringUTFChars     = 169
	slotReleaseStringUTFChars = 170
	slotExceptionCheck        = 228

	// NativeInterfaceSlots is the number of slots in a JNI 1.6 native interface.
	NativeInterfaceSlots = 233
)

// JNIInvokeInterface slot indices.
const (
	slotAttachCurrentThread = 4
	slotDetachCurrentThread = 5
	slotGetEnv              = 6

	// InvokeInterfaceSlots is the number of slots in a JNI 1.6 invoke interface.
	InvokeInterfaceSlots = 8
)

// ErrNullPointer is returned when a null JavaVM, JNIEnv or table slot is encountered.
var ErrNullPointer = errors.New("jni: null pointer")

// Error is a failed JNI call with its return code.
type Error struct {
	Op   string
	Code int32
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jni %s: %s (code %d)", e.Op, codeString(e.Code), e.Code)
}

func codeString(code int32) string {
	switch code {
	case OK:
		return "ok"
	case EDetached:
		return "thread detached"
	case EVersion:
		return "version not supported"
	case -4:
		return "out of memory"
	case -5:
		return "VM already created"
	case -6:
		return "invalid arguments"
	default:
		return "unknown error"
	}
}

// slot reads entry index of the function table at table.
func slot(table uintptr, index int) uintptr {
	return *(*uintptr)(unsafe.Add(unsafe.Pointer(table), uintptr(index)*platform.PointerSize))
}

// bindSlot binds a Go function variable to entry index of a function table.
func bindSlot(fptr any, table uintptr, index int, name string) error {
	addr := slot(table, index)
	if addr == 0 {
		return fmt.Errorf("%w: %s slot %d", ErrNullPointer, name, index)
	}
	purego.RegisterFunc(fptr, addr)
	return nil
}

// nativeFuncs are the bound JNINativeInterface entries the bridge uses.
type nativeFuncs struct {
	findClass             func(env uintptr, name string) uintptr
	exceptionDescribe     func(env uintptr)
	exceptionClear        func(env uintptr)
	newGlobalRef          func(env, obj uintptr) uintptr
	deleteGlobalRef       func(env, obj uintptr)
	deleteLocalRef        func(env, obj uintptr)
	getStaticMethodID     func(env, cls uintptr, name, sig string) uintptr
	callStaticVoidMethodA func(env, cls, method uintptr, args unsafe.Pointer)
	getStringUTFChars     func(env, str uintptr, isCopy unsafe.Pointer) uintptr
	releaseStringUTFChars func(env, str, chars uintptr)
	exceptionCheck        func(env uintptr) uint8
}

// Every JNIEnv of a process shares one native interface table, so bindings
// are cached per table address.
var (
	tablesMu sync.Mutex
	tables   = make(map[uintptr]*nativeFuncs)
)

func bindNative(table uintptr) (*nativeFuncs, error) {
	tablesMu.Lock()
	defer tablesMu.Unlock()

	if fn, ok := tables[table]; ok {
		return fn, nil
	}

	fn := &nativeFuncs{}
	binds := []struct {
		fptr  any
		index int
		name  string
	}{
		{&fn.findClass, slotFindClass, "FindClass"},
		{&fn.exceptionDescribe, slotExceptionDescribe, "ExceptionDescribe"},
		{&fn.exceptionClear, slotExceptionClear, "ExceptionClear"},
		{&fn.newGlobalRef, slotNewGlobalRef, "NewGlobalRef"},
		{&fn.deleteGlobalRef, slotDeleteGlobalRef, "DeleteGlobalRef"},
		{&fn.deleteLocalRef, slotDeleteLocalRef, "DeleteLocalRef"},
		{&fn.getStaticMethodID, slotGetStaticMethodID, "GetStaticMethodID"},
		{&fn.callStaticVoidMethodA, slotCallStaticVoidMethodA, "CallStaticVoidMethodA"},
		{&fn.getStringUTFChars, slotGetStringUTFChars, "GetStringUTFChars"},
		{&fn.releaseStringUTFChars, slotReleaseStringUTFChars, "ReleaseStringUTFChars"},
		{&fn.exceptionCheck, slotExceptionCheck, "ExceptionCheck"},
	}
	for _, b := range binds {
		if err := bindSlot(b.fptr, table, b.index, b.name); err != nil {
			return nil, err
		}
	}

	tables[table] = fn
	return fn, nil
}
