package unityjs

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

// fakeEnv is an in-memory Env that records every call in order.
type fakeEnv struct {
	mu sync.Mutex

	strings map[String]string
	live    map[uintptr][]byte // buffers handed out and not yet released

	classes   map[string]Class
	methods   map[string]MethodID
	nextRef   Class
	globals   map[Class]bool
	locals    map[Class]bool
	calls     []string
	stale     int // calls made through a deleted global ref
	log       []string
	failUTF   map[String]bool
	throwOn   string // FindClass, GetStaticMethodID or CallStaticVoidMethod
	pending   bool
	described int
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		strings: make(map[String]string),
		live:    make(map[uintptr][]byte),
		classes: make(map[string]Class),
		methods: make(map[string]MethodID),
		nextRef: 0x1000,
		globals: make(map[Class]bool),
		locals:  make(map[Class]bool),
		failUTF: make(map[String]bool),
	}
}

func (e *fakeEnv) record(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

// addString registers a managed string and returns its handle.
func (e *fakeEnv) addString(s string) String {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := String(0x100 + len(e.strings))
	e.strings[h] = s
	return h
}

// addEntry makes class.method()V resolvable.
func (e *fakeEnv) addEntry(class, method string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classes[class] = Class(0x10 + len(e.classes))
	e.methods[class+"."+method] = MethodID(0x20 + len(e.methods))
}

func (e *fakeEnv) GetStringUTFChars(s String) UTFChars {
	e.mu.Lock()
	defer e.mu.Unlock()
	str, ok := e.strings[s]
	if !ok || e.failUTF[s] {
		e.record("acquire-fail:%d", s)
		return UTFChars{}
	}
	buf := append([]byte(str), 0)
	c := NewUTFChars(&buf[0])
	e.live[c.Ptr()] = buf
	e.record("acquire:%s", str)
	return c
}

func (e *fakeEnv) ReleaseStringUTFChars(s String, chars UTFChars) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.live[chars.Ptr()]; !ok {
		e.record("release-unknown:%d", s)
		return
	}
	delete(e.live, chars.Ptr())
	e.record("release:%s", e.strings[s])
}

func (e *fakeEnv) FindClass(name string) Class {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.record("find-class:%s", name)
	if e.throwOn == "FindClass" {
		e.pending = true
		return 0
	}
	cls, ok := e.classes[name]
	if !ok {
		return 0
	}
	e.locals[cls] = true
	return cls
}

func (e *fakeEnv) GetStaticMethodID(cls Class, name, sig string) MethodID {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.record("get-static-method:%s%s", name, sig)
	if e.throwOn == "GetStaticMethodID" {
		e.pending = true
		return 0
	}
	if sig != "()V" {
		return 0
	}
	for class, c := range e.classes {
		if c == cls {
			return e.methods[class+"."+name]
		}
	}
	return 0
}

func (e *fakeEnv) CallStaticVoidMethod(cls Class, method MethodID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, fmt.Sprintf("%#x:%#x", cls, method))
	if !e.globals[cls] {
		e.stale++
	}
	e.record("call")
	if e.throwOn == "CallStaticVoidMethod" {
		e.pending = true
	}
}

func (e *fakeEnv) NewGlobalRef(cls Class) Class {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextRef++
	e.globals[e.nextRef] = true
	return e.nextRef
}

func (e *fakeEnv) DeleteGlobalRef(cls Class) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.globals, cls)
}

func (e *fakeEnv) DeleteLocalRef(cls Class) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.locals, cls)
}

func (e *fakeEnv) ExceptionCheck() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

func (e *fakeEnv) ExceptionDescribe() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.described++
}

func (e *fakeEnv) ExceptionClear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = false
}

func (e *fakeEnv) liveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.live)
}

func (e *fakeEnv) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEnv) events() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

// fakeVM hands out a single env.
type fakeVM struct {
	mu        sync.Mutex
	env       *fakeEnv
	err       error
	detachErr error
	envCalls  int
	detaches  int
}

func (v *fakeVM) Env() (Env, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.envCalls++
	if v.err != nil {
		return nil, v.err
	}
	return v.env, nil
}

func (v *fakeVM) Detach() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detaches++
	return v.detachErr
}

func (v *fakeVM) detachCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detaches
}

// gatedVM blocks the first Env call made after gate is set until gate is closed.
type gatedVM struct {
	*fakeVM
	once    sync.Once
	gate    chan struct{}
	entered chan struct{}
}

func (v *gatedVM) Env() (Env, error) {
	if v.gate != nil {
		v.once.Do(func() {
			v.entered <- struct{}{}
			<-v.gate
		})
	}
	return v.fakeVM.Env()
}

// blockedRenderUpdate loads b through a gatedVM and starts a render update that
// stays inside VM.Env until the returned release func is called.
func blockedRenderUpdate(t *testing.T) (b *Bridge, env *fakeEnv, vm *gatedVM, release func() error) {
	t.Helper()
	env = newFakeEnv()
	env.addEntry(DefaultEntryClass, DefaultEntryMethod)
	vm = &gatedVM{fakeVM: &fakeVM{env: env}}
	b = New(testConfig())
	if _, err := b.OnLoad(vm); err != nil {
		t.Fatalf("OnLoad failed: %v", err)
	}

	vm.gate = make(chan struct{})
	vm.entered = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- b.OnRenderEvent(RenderEventUpdate) }()
	<-vm.entered

	return b, env, vm, func() error {
		close(vm.gate)
		return <-done
	}
}

var errNoThread = errors.New("thread cannot be attached")

// fakeGraphics records listener registration.
type fakeGraphics struct {
	mu         sync.Mutex
	renderer   Renderer
	listeners  []DeviceEventListener
	registered int
	removed    int
	queried    int
}

func (g *fakeGraphics) Renderer() Renderer {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queried++
	return g.renderer
}

func (g *fakeGraphics) RegisterDeviceEventListener(l DeviceEventListener) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.registered++
	g.listeners = append(g.listeners, l)
	return nil
}

func (g *fakeGraphics) UnregisterDeviceEventListener(l DeviceEventListener) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, cur := range g.listeners {
		if cur == l {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			g.removed++
			return nil
		}
	}
	return errors.New("listener not registered")
}

func (g *fakeGraphics) emit(t DeviceEventType) {
	g.mu.Lock()
	ls := append([]DeviceEventListener(nil), g.listeners...)
	g.mu.Unlock()
	for _, l := range ls {
		l.OnGraphicsDeviceEvent(t)
	}
}

type fakeInterfaces struct {
	graphics Graphics
	err      error
}

func (f fakeInterfaces) Graphics() (Graphics, error) {
	return f.graphics, f.err
}

// recordingSender copies every message it receives.
type recordingSender struct {
	env  *fakeEnv
	msgs [][3]string
	live []int // live buffer count observed during each call
}

func (s *recordingSender) SendMessage(target, method, message UTFChars) {
	s.msgs = append(s.msgs, [3]string{target.String(), method.String(), message.String()})
	if s.env != nil {
		s.env.mu.Lock()
		s.env.record("send")
		s.env.mu.Unlock()
		s.live = append(s.live, s.env.liveCount())
	}
}

// testConfig returns a config that traces every occurrence.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TraceInterval = 0
	return cfg
}

// loadedBridge returns a bridge loaded against an env where the default entry point resolves.
func loadedBridge(t interface{ Fatalf(string, ...any) }) (*Bridge, *fakeVM, *fakeEnv) {
	env := newFakeEnv()
	env.addEntry(DefaultEntryClass, DefaultEntryMethod)
	vm := &fakeVM{env: env}
	b := New(testConfig())
	if _, err := b.OnLoad(vm); err != nil {
		t.Fatalf("OnLoad failed: %v", err)
	}
	return b, vm, env
}
