// Command unityjs is the UnityJS native plugin for Android.
//
// Build it as a shared library and ship it as libUnityJS.so next to the Unity
// player:
//
//	CGO_ENABLED=1 GOOS=android GOARCH=arm64 CC=$NDK_CC \
//	    go build -buildmode=c-shared -o libUnityJS.so ./cmd/unityjs
//
// The Java class com.groundupsoftware.unityjs.CUnityJSPlugin loads it with
// System.loadLibrary("UnityJS") and calls the exported JNI methods; the engine
// calls the render-event function it hands out.
package main

func main() {}
