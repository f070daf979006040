package unityjs

import (
	"fmt"
)

// OnLoad is the managed-runtime load hook. It captures vm, obtains the env of
// the loading thread and resolves the render-update entry point.
//
// An env failure fails the load. A missing entry point does not: it is logged,
// cached and reported by every later OnRenderEvent(RenderEventUpdate).
func (b *Bridge) OnLoad(vm VM) (JNIVersion, error) {
	if vm == nil {
		return 0, fmt.Errorf("%w: nil VM", ErrNullHandle)
	}
	env, err := vm.Env()
	if err != nil {
		b.logger().Warn("managed load: no env for loading thread", "err", err)
		return 0, fmt.Errorf("%w: %w", ErrAttachFailed, err)
	}

	b.mu.Lock()
	b.vm = vm
	b.mu.Unlock()

	if err := b.ReloadEntryPoint(env); err != nil {
		b.logger().Warn("managed load: render-update entry point unresolved", "err", err)
	}
	b.logger().Info("managed runtime loaded", "version", fmt.Sprintf("%#x", int32(JNIVersion1_6)))
	return JNIVersion1_6, nil
}

// OnUnload is the managed-runtime unload hook. It waits for a running render
// update, then drops the cached entry point and the VM. If obtaining the env
// attached the unloading thread, the thread is detached again.
func (b *Bridge) OnUnload() {
	b.callMu.Lock()
	defer b.callMu.Unlock()

	b.mu.Lock()
	vm, entry := b.vm, b.entry
	b.vm = nil
	b.entry = entryPoint{}
	b.mu.Unlock()

	if vm != nil && entry.class != 0 {
		if env, err := vm.Env(); err == nil {
			env.DeleteGlobalRef(entry.class)
			if err := vm.Detach(); err != nil {
				b.logger().Warn("managed unload: detach failed", "err", err)
			}
		}
	}
	b.logger().Info("managed runtime unloaded")
}

// ReloadEntryPoint resolves the render-update class and static method on env
// and replaces the cached pair. The old class reference is deleted once no
// render update is using it. The lookup error, if any, is both cached and
// returned.
//
// ReloadEntryPoint must not be called from inside the render-update method.
func (b *Bridge) ReloadEntryPoint(env Env) error {
	if env == nil {
		return fmt.Errorf("%w: nil env", ErrNullHandle)
	}
	entry := b.resolveEntryPoint(env)

	b.callMu.Lock()
	defer b.callMu.Unlock()

	b.mu.Lock()
	old := b.entry
	b.entry = entry
	b.mu.Unlock()

	if old.class != 0 {
		env.DeleteGlobalRef(old.class)
	}
	return entry.err
}

func (b *Bridge) resolveEntryPoint(env Env) entryPoint {
	cfg := b.cfg
	fail := func(method string, cause error) entryPoint {
		epErr := &EntryPointError{Class: cfg.EntryClass, Err: cause}
		if method != "" {
			epErr.Method = method
			epErr.Signature = cfg.EntrySignature
		}
		return entryPoint{err: epErr}
	}

	local := env.FindClass(cfg.EntryClass)
	if clearException(env) {
		return fail("", ErrManagedException)
	}
	if local == 0 {
		return fail("", ErrNullHandle)
	}
	defer env.DeleteLocalRef(local)

	method := env.GetStaticMethodID(local, cfg.EntryMethod, cfg.EntrySignature)
	if clearException(env) {
		return fail(cfg.EntryMethod, ErrManagedException)
	}
	if method == 0 {
		return fail(cfg.EntryMethod, ErrNullHandle)
	}

	global := env.NewGlobalRef(local)
	if global == 0 {
		return fail("", ErrNullHandle)
	}
	return entryPoint{class: global, method: method}
}

// clearException clears a pending exception and reports whether there was one.
func clearException(env Env) bool {
	if !env.ExceptionCheck() {
		return false
	}
	env.ExceptionClear()
	return true
}

// PluginLoad is the engine plugin-load hook. It caches the interfaces and the
// graphics interface, registers b as device-event listener and primes it with
// an initialize event.
func (b *Bridge) PluginLoad(ifaces Interfaces) error {
	if ifaces == nil {
		return fmt.Errorf("%w: nil interfaces", ErrNullHandle)
	}
	g, err := ifaces.Graphics()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGraphics, err)
	}
	if g == nil {
		return ErrNoGraphics
	}

	b.mu.Lock()
	b.ifaces = ifaces
	b.graphics = g
	b.mu.Unlock()

	if err := g.RegisterDeviceEventListener(b); err != nil {
		return fmt.Errorf("unityjs: register device event listener: %w", err)
	}
	b.OnGraphicsDeviceEvent(DeviceEventInitialize)
	return nil
}

// PluginUnload is the engine plugin-unload hook. Cached handles are kept.
func (b *Bridge) PluginUnload() error {
	b.mu.RLock()
	g := b.graphics
	b.mu.RUnlock()

	if g == nil {
		return ErrNoGraphics
	}
	if err := g.UnregisterDeviceEventListener(b); err != nil {
		return fmt.Errorf("unityjs: unregister device event listener: %w", err)
	}
	b.logger().Info("engine plugin unloaded")
	return nil
}

// OnGraphicsDeviceEvent implements DeviceEventListener.
func (b *Bridge) OnGraphicsDeviceEvent(eventType DeviceEventType) {
	switch eventType {
	case DeviceEventInitialize:
		b.mu.RLock()
		g := b.graphics
		b.mu.RUnlock()

		r := RendererNull
		if g != nil {
			r = g.Renderer()
		}
		b.setRenderer(r)
		b.logger().Info("graphics device initialized", "renderer", r, "backend", r.Backend())

	case DeviceEventShutdown:
		b.setRenderer(RendererNull)
		b.logger().Info("graphics device shut down")

	case DeviceEventBeforeReset, DeviceEventAfterReset:
		// Only Direct3D 9 resets its device.

	default:
		b.logger().Debug("ignoring unknown graphics device event", "event", eventType)
	}
}

func (b *Bridge) setRenderer(r Renderer) {
	b.mu.Lock()
	b.renderer = r
	b.mu.Unlock()
}

// Renderer returns the renderer recorded by the last initialize or shutdown event.
func (b *Bridge) Renderer() Renderer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.renderer
}
