package unityjs

import "fmt"

// RenderEventID identifies a render-thread event issued by the engine
// (GL.IssuePluginEvent).
type RenderEventID int32

// Render events.
const (
	RenderEventStartup  RenderEventID = 0
	RenderEventShutdown RenderEventID = 1
	RenderEventUpdate   RenderEventID = 2
)

// OnRenderEvent runs on the engine's render thread. RenderEventUpdate invokes
// the cached render-update entry point on the calling thread.
// RenderEventShutdown detaches the render thread from the managed runtime if
// an earlier update attached it. Every other id is a no-op.
//
// An unresolved entry point is never invoked: the call returns an
// *EntryPointError matching ErrMissingEntryPoint instead.
func (b *Bridge) OnRenderEvent(id RenderEventID) error {
	switch id {
	case RenderEventStartup:
		return nil
	case RenderEventShutdown:
		return b.detachRenderThread()
	case RenderEventUpdate:
		err := b.renderUpdate()
		if err != nil {
			b.renderFailure.Do(func() {
				b.logger().Warn("render update failed", "err", err)
			})
		}
		return err
	default:
		return nil
	}
}

func (b *Bridge) renderUpdate() error {
	b.callMu.RLock()
	defer b.callMu.RUnlock()

	b.mu.RLock()
	vm, entry := b.vm, b.entry
	b.mu.RUnlock()

	if vm == nil {
		return ErrNotLoaded
	}
	if entry.err != nil {
		return entry.err
	}
	if entry.class == 0 || entry.method == 0 {
		return &EntryPointError{
			Class:     b.cfg.EntryClass,
			Method:    b.cfg.EntryMethod,
			Signature: b.cfg.EntrySignature,
			Err:       ErrNullHandle,
		}
	}

	env, err := vm.Env()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAttachFailed, err)
	}

	env.CallStaticVoidMethod(entry.class, entry.method)
	if env.ExceptionCheck() {
		env.ExceptionDescribe()
		env.ExceptionClear()
		return fmt.Errorf("%w: %s.%s", ErrManagedException, b.cfg.EntryClass, b.cfg.EntryMethod)
	}
	return nil
}

func (b *Bridge) detachRenderThread() error {
	b.mu.RLock()
	vm := b.vm
	b.mu.RUnlock()

	if vm == nil {
		return nil
	}
	if err := vm.Detach(); err != nil {
		b.logger().Warn("render thread detach failed", "err", err)
		return err
	}
	return nil
}
