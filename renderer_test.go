package unityjs

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestRendererString(t *testing.T) {
	tests := []struct {
		r    Renderer
		want string
	}{
		{RendererNull, "null"},
		{RendererOpenGLES30, "gles30"},
		{RendererVulkan, "vulkan"},
		{RendererMetal, "metal"},
		{Renderer(3), "renderer(3)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Renderer(%d).String() = %q, want %q", int32(tt.r), got, tt.want)
		}
	}
}

func TestRendererBackend(t *testing.T) {
	tests := []struct {
		r    Renderer
		want gputypes.Backend
	}{
		{RendererVulkan, gputypes.BackendVulkan},
		{RendererMetal, gputypes.BackendMetal},
		{RendererD3D12, gputypes.BackendDX12},
		{RendererOpenGLES30, gputypes.BackendGL},
		{RendererOpenGLCore, gputypes.BackendGL},
		{RendererNull, gputypes.BackendEmpty},
		{RendererD3D11, gputypes.BackendEmpty},
		{RendererPS5, gputypes.BackendEmpty},
	}
	for _, tt := range tests {
		if got := tt.r.Backend(); got != tt.want {
			t.Errorf("%v.Backend() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDeviceEventTypeString(t *testing.T) {
	if DeviceEventInitialize.String() != "initialize" {
		t.Errorf("got %q", DeviceEventInitialize.String())
	}
	if DeviceEventType(7).String() != "device-event(7)" {
		t.Errorf("got %q", DeviceEventType(7).String())
	}
}
