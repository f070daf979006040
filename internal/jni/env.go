//go:build linux && (amd64 || arm64)

package jni

import (
	"fmt"
	"unsafe"

	unityjs "github.com/SimHacker/UnityJS"
)

// Env wraps a JNIEnv pointer. It must only be used on the thread it belongs to.
type Env struct {
	ptr uintptr
	fn  *nativeFuncs
}

var _ unityjs.Env = (*Env)(nil)

// EnvFromPtr wraps the JNIEnv received by a native method or returned by GetEnv.
func EnvFromPtr(ptr uintptr) (*Env, error) {
	if ptr == 0 {
		return nil, fmt.Errorf("%w: JNIEnv", ErrNullPointer)
	}
	table := *(*uintptr)(unsafe.Pointer(ptr))
	if table == 0 {
		return nil, fmt.Errorf("%w: JNINativeInterface", ErrNullPointer)
	}
	fn, err := bindNative(table)
	if err != nil {
		return nil, err
	}
	return &Env{ptr: ptr, fn: fn}, nil
}

// Ptr returns the raw JNIEnv pointer.
func (e *Env) Ptr() uintptr { return e.ptr }

func (e *Env) GetStringUTFChars(s unityjs.String) unityjs.UTFChars {
	return unityjs.UTFCharsFromPtr(e.fn.getStringUTFChars(e.ptr, uintptr(s), nil))
}

func (e *Env) ReleaseStringUTFChars(s unityjs.String, chars unityjs.UTFChars) {
	e.fn.releaseStringUTFChars(e.ptr, uintptr(s), chars.Ptr())
}

func (e *Env) FindClass(name string) unityjs.Class {
	return unityjs.Class(e.fn.findClass(e.ptr, name))
}

func (e *Env) GetStaticMethodID(cls unityjs.Class, name, sig string) unityjs.MethodID {
	return unityjs.MethodID(e.fn.getStaticMethodID(e.ptr, uintptr(cls), name, sig))
}

// CallStaticVoidMethod calls a no-argument static void method through
// CallStaticVoidMethodA, which avoids the variadic entry.
func (e *Env) CallStaticVoidMethod(cls unityjs.Class, method unityjs.MethodID) {
	e.fn.callStaticVoidMethodA(e.ptr, uintptr(cls), uintptr(method), nil)
}

func (e *Env) NewGlobalRef(cls unityjs.Class) unityjs.Class {
	return unityjs.Class(e.fn.newGlobalRef(e.ptr, uintptr(cls)))
}

func (e *Env) DeleteGlobalRef(cls unityjs.Class) {
	e.fn.deleteGlobalRef(e.ptr, uintptr(cls))
}

func (e *Env) DeleteLocalRef(cls unityjs.Class) {
	e.fn.deleteLocalRef(e.ptr, uintptr(cls))
}

func (e *Env) ExceptionCheck() bool {
	return e.fn.exceptionCheck(e.ptr) != 0
}

func (e *Env) ExceptionDescribe() {
	e.fn.exceptionDescribe(e.ptr)
}

func (e *Env) ExceptionClear() {
	e.fn.exceptionClear(e.ptr)
}
