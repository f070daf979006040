//go:build android && cgo

package main

/*
#cgo LDFLAGS: -llog
#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"unsafe"
)

var logTag = C.CString("UnityJS")

// logcatWriter writes each slog text record to logcat under the UnityJS tag.
type logcatWriter struct{}

func (logcatWriter) Write(p []byte) (int, error) {
	msg := C.CString(string(p))
	defer C.free(unsafe.Pointer(msg))
	C.__android_log_write(C.int(C.ANDROID_LOG_DEBUG), logTag, msg)
	return len(p), nil
}
