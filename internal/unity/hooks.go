//go:build (linux || darwin || windows) && (amd64 || arm64)

package unity

import (
	unityjs "github.com/SimHacker/UnityJS"
)

// PluginLoad wraps the IUnityInterfaces received by UnityPluginLoad and runs
// the bridge's plugin-load hook.
func PluginLoad(b *unityjs.Bridge, ifacesPtr uintptr) error {
	ifaces, err := NewInterfaces(ifacesPtr)
	if err != nil {
		return err
	}
	return b.PluginLoad(ifaces)
}

// SetSendMessageCallback installs the native send-message function at addr as
// the bridge's sender. A null addr clears the sender and returns
// ErrNullCallback.
func SetSendMessageCallback(b *unityjs.Bridge, addr uintptr) error {
	sender, err := NewNativeSender(addr)
	if err != nil {
		b.SetSender(nil)
		return err
	}
	b.SetSender(sender)
	return nil
}
