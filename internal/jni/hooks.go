//go:build linux && (amd64 || arm64)

package jni

import (
	unityjs "github.com/SimHacker/UnityJS"
)

// OnLoad wraps the JavaVM received by JNI_OnLoad and runs the bridge's load
// hook. It returns the version to report, or Err when loading must fail.
func OnLoad(b *unityjs.Bridge, vmPtr uintptr) (int32, error) {
	vm, err := NewVM(vmPtr)
	if err != nil {
		return Err, err
	}
	version, err := b.OnLoad(vm)
	if err != nil {
		return Err, err
	}
	return int32(version), nil
}

// SendMessage relays a native UnitySendMessage call to the bridge in a single
// call, so a sender registered concurrently is either seen or not. A null
// envPtr is only acceptable while no sender is registered.
func SendMessage(b *unityjs.Bridge, envPtr, target, method, message uintptr) error {
	var env unityjs.Env
	if envPtr != 0 {
		e, err := EnvFromPtr(envPtr)
		if err != nil {
			return err
		}
		env = e
	}
	return b.SendMessage(env, unityjs.String(target), unityjs.String(method), unityjs.String(message))
}
