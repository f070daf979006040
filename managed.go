package unityjs

import "unsafe"

// JNIVersion is the interface version reported to the managed runtime from the load hook.
type JNIVersion int32

// JNI interface versions.
const (
	JNIVersion1_2 JNIVersion = 0x00010002
	JNIVersion1_4 JNIVersion = 0x00010004
	JNIVersion1_6 JNIVersion = 0x00010006
)

// Opaque managed-runtime handles. The zero value is the null handle.
type (
	// String is a jstring local reference.
	String uintptr
	// Class is a jclass reference (local or global).
	Class uintptr
	// MethodID is a jmethodID.
	MethodID uintptr
)

// VM is the managed runtime (a JavaVM).
type VM interface {
	// Env returns the env for the calling OS thread, attaching the thread first
	// if it is not yet known to the runtime.
	Env() (Env, error)
	// Detach detaches the calling OS thread if this package attached it.
	Detach() error
}

// Env is a thread-local managed environment (a JNIEnv).
// An Env must only be used on the OS thread it was obtained on.
type Env interface {
	GetStringUTFChars(s String) UTFChars
	ReleaseStringUTFChars(s String, chars UTFChars)

	FindClass(name string) Class
	GetStaticMethodID(cls Class, name, sig string) MethodID
	CallStaticVoidMethod(cls Class, method MethodID)

	NewGlobalRef(cls Class) Class
	DeleteGlobalRef(cls Class)
	DeleteLocalRef(cls Class)

	ExceptionCheck() bool
	ExceptionDescribe()
	ExceptionClear()
}

// UTFChars is a NUL-terminated modified UTF-8 buffer borrowed from the managed
// runtime. It stays valid until it is handed back with ReleaseStringUTFChars.
type UTFChars struct {
	ptr *byte
}

// NewUTFChars wraps a native NUL-terminated buffer.
func NewUTFChars(p *byte) UTFChars {
	return UTFChars{ptr: p}
}

// UTFCharsFromPtr wraps a native address returned by the runtime.
func UTFCharsFromPtr(p uintptr) UTFChars {
	return UTFChars{ptr: (*byte)(unsafe.Pointer(p))}
}

// IsNull reports whether the buffer is the null pointer.
func (c UTFChars) IsNull() bool { return c.ptr == nil }

// Ptr returns the native address of the buffer.
func (c UTFChars) Ptr() uintptr { return uintptr(unsafe.Pointer(c.ptr)) }

// String copies the buffer into a Go string.
func (c UTFChars) String() string {
	if c.ptr == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(c.ptr), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(c.ptr, n))
}
