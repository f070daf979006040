//go:build (linux || darwin || windows) && (amd64 || arm64)

package unity

import (
	"fmt"

	"github.com/ebitengine/purego"

	unityjs "github.com/SimHacker/UnityJS"
)

// NativeSender calls a native send-message callback,
// void (*)(const char *target, const char *method, const char *message).
type NativeSender struct {
	addr uintptr
	fn   func(target, method, message uintptr)
}

var _ unityjs.Sender = (*NativeSender)(nil)

// NewNativeSender binds the callback address handed over by the managed side.
// The address cannot be type checked; only null is rejected.
func NewNativeSender(addr uintptr) (*NativeSender, error) {
	if addr == 0 {
		return nil, fmt.Errorf("%w: send-message callback", unityjs.ErrNullCallback)
	}
	s := &NativeSender{addr: addr}
	purego.RegisterFunc(&s.fn, addr)
	return s, nil
}

// Addr returns the bound callback address.
func (s *NativeSender) Addr() uintptr { return s.addr }

// SendMessage calls the native callback with the borrowed buffers.
func (s *NativeSender) SendMessage(target, method, message unityjs.UTFChars) {
	s.fn(target.Ptr(), method.Ptr(), message.Ptr())
}
