// Package platform describes what the bridge can rely on from the current
// operating system and architecture.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// purego trampolines and the JNI function-table offsets assume 8-byte pointers.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// PointerSize is the size of a native function-table slot.
const PointerSize = unsafe.Sizeof(uintptr(0))

// SupportsCallbacks indicates whether purego can create native callbacks here.
const SupportsCallbacks = (runtime.GOOS == "linux" || runtime.GOOS == "android" ||
	runtime.GOOS == "darwin" || runtime.GOOS == "windows") &&
	(runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64")

// EngineCallsPluginLoad indicates whether the engine invokes UnityPluginLoad.
// On Android the engine never calls it, so the Java side must drive the
// render-event path on its own.
const EngineCallsPluginLoad = runtime.GOOS != "android"

// PluginName is the base name of the shared library loaded by
// System.loadLibrary("UnityJS").
const PluginName = "UnityJS"

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, android, freebsd
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
//
// Examples:
//   - Android: FormatLibraryName("UnityJS") -> "libUnityJS.so"
//   - macOS:   FormatLibraryName("UnityJS") -> "libUnityJS.dylib"
//   - Windows: FormatLibraryName("UnityJS") -> "UnityJS.dll"
func FormatLibraryName(name string) string {
	return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
}

// PluginLibrary returns the filename of the bridge's own shared library.
func PluginLibrary() string {
	return FormatLibraryName(PluginName)
}

// Describe returns a one-line summary for startup logs.
func Describe() string {
	return fmt.Sprintf("%s/%s 64bit=%t callbacks=%t pluginLoad=%t",
		runtime.GOOS, runtime.GOARCH, Is64Bit, SupportsCallbacks, EngineCallsPluginLoad)
}
