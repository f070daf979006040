//go:build android && cgo

package main

/*
#include <jni.h>
*/
import "C"

import (
	"unsafe"

	"github.com/SimHacker/UnityJS/internal/jni"
	"github.com/SimHacker/UnityJS/internal/unity"
)

// JNI_OnLoad runs when Java loads the library. Returning JNI_ERR makes
// System.loadLibrary fail.
//
//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	version := jni.Err
	err := safeCall("JNI_OnLoad", func() error {
		var err error
		version, err = jni.OnLoad(getBridge(), uintptr(unsafe.Pointer(vm)))
		return err
	})
	if err != nil {
		return C.JNI_ERR
	}
	return C.jint(version)
}

// JNI_OnUnload runs when the class loader holding the library is collected.
//
//export JNI_OnUnload
func JNI_OnUnload(vm *C.JavaVM, reserved unsafe.Pointer) {
	_ = safeCall("JNI_OnUnload", func() error {
		getBridge().OnUnload()
		return nil
	})
}

// UnityPluginLoad is called by the engine on every platform except Android.
//
//export UnityPluginLoad
func UnityPluginLoad(unityInterfaces unsafe.Pointer) {
	_ = safeCall("UnityPluginLoad", func() error {
		return unity.PluginLoad(getBridge(), uintptr(unityInterfaces))
	})
}

//export UnityPluginUnload
func UnityPluginUnload() {
	_ = safeCall("UnityPluginUnload", func() error {
		return getBridge().PluginUnload()
	})
}

// Java_com_groundupsoftware_unityjs_CUnityJSPlugin_SetUnitySendMessageCallback
// registers the engine's send-message function pointer passed down from C#.
// A null pointer clears the registration.
//
//export Java_com_groundupsoftware_unityjs_CUnityJSPlugin_SetUnitySendMessageCallback
func Java_com_groundupsoftware_unityjs_CUnityJSPlugin_SetUnitySendMessageCallback(env *C.JNIEnv, cls C.jclass, callback C.jlong) {
	_ = safeCall("SetUnitySendMessageCallback", func() error {
		return unity.SetSendMessageCallback(getBridge(), uintptr(callback))
	})
}

//export Java_com_groundupsoftware_unityjs_CUnityJSPlugin_UnitySendMessage
func Java_com_groundupsoftware_unityjs_CUnityJSPlugin_UnitySendMessage(env *C.JNIEnv, cls C.jclass, target, method, message C.jstring) {
	_ = safeCall("UnitySendMessage", func() error {
		return jni.SendMessage(getBridge(), uintptr(unsafe.Pointer(env)),
			uintptr(unsafe.Pointer(target)),
			uintptr(unsafe.Pointer(method)),
			uintptr(unsafe.Pointer(message)))
	})
}

// Java_com_groundupsoftware_unityjs_CUnityJSPlugin_GetRenderEventFunc returns
// the render-event function for GL.IssuePluginEvent.
//
//export Java_com_groundupsoftware_unityjs_CUnityJSPlugin_GetRenderEventFunc
func Java_com_groundupsoftware_unityjs_CUnityJSPlugin_GetRenderEventFunc(env *C.JNIEnv, cls C.jclass) C.jlong {
	var addr uintptr
	_ = safeCall("GetRenderEventFunc", func() error {
		getBridge()
		addr = unity.RenderEventFunc()
		return nil
	})
	return C.jlong(addr)
}
