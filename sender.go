package unityjs

import "fmt"

// Sender delivers a message to a named method on a named engine object
// (UnitySendMessage). The buffers are only valid for the duration of the call.
type Sender interface {
	SendMessage(target, method, message UTFChars)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(target, method, message UTFChars)

// SendMessage calls f.
func (f SenderFunc) SendMessage(target, method, message UTFChars) {
	f(target, method, message)
}

// SetSender registers the outbound send-message callback, replacing any
// previous one. Pass nil to clear it.
func (b *Bridge) SetSender(s Sender) {
	b.mu.Lock()
	b.sender = s
	b.mu.Unlock()
	b.logger().Debug("send-message callback set", "set", s != nil)
}

// HasSender reports whether a send-message callback is registered.
func (b *Bridge) HasSender() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sender != nil
}

// SendMessage forwards a target/method/message triple from the managed side to
// the registered Sender.
//
// Without a Sender the call is a no-op: it is traced, acquires nothing and
// returns nil. Otherwise the three strings are converted, the Sender runs
// synchronously with the live buffers, and every acquired buffer is released
// after it returns, including when it panics or a later conversion fails.
func (b *Bridge) SendMessage(env Env, target, method, message String) error {
	b.mu.RLock()
	s := b.sender
	b.mu.RUnlock()

	if s == nil {
		b.missingSender.Do(func() {
			b.logger().Debug("send message called without a send-message callback")
		})
		return nil
	}
	if env == nil {
		return fmt.Errorf("%w: nil env", ErrNullHandle)
	}

	strs := [3]String{target, method, message}
	var chars [3]UTFChars
	acquired := 0
	defer func() {
		for i := 0; i < acquired; i++ {
			env.ReleaseStringUTFChars(strs[i], chars[i])
		}
	}()

	for i, str := range strs {
		if str == 0 {
			return fmt.Errorf("%w: send message argument %d", ErrNullHandle, i)
		}
		c := env.GetStringUTFChars(str)
		if c.IsNull() {
			clearException(env)
			return fmt.Errorf("%w: string conversion of argument %d", ErrNullHandle, i)
		}
		chars[i] = c
		acquired++
	}

	s.SendMessage(chars[0], chars[1], chars[2])
	return nil
}
