package unityjs

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Renderer mirrors UnityGfxRenderer, the engine's current graphics backend.
type Renderer int32

// Renderer values as defined by IUnityGraphics.h.
const (
	RendererD3D11              Renderer = 2
	RendererNull               Renderer = 4
	RendererOpenGLES20         Renderer = 8
	RendererOpenGLES30         Renderer = 11
	RendererPS4                Renderer = 13
	RendererXboxOne            Renderer = 14
	RendererMetal              Renderer = 16
	RendererOpenGLCore         Renderer = 17
	RendererD3D12              Renderer = 18
	RendererVulkan             Renderer = 21
	RendererNvn                Renderer = 22
	RendererXboxOneD3D12       Renderer = 23
	RendererGameCoreXboxOne    Renderer = 24
	RendererGameCoreXboxSeries Renderer = 25
	RendererPS5                Renderer = 26
	RendererPS5NGGC            Renderer = 27
)

var rendererNames = map[Renderer]string{
	RendererD3D11:              "d3d11",
	RendererNull:               "null",
	RendererOpenGLES20:         "gles20",
	RendererOpenGLES30:         "gles30",
	RendererPS4:                "ps4",
	RendererXboxOne:            "xboxone",
	RendererMetal:              "metal",
	RendererOpenGLCore:         "glcore",
	RendererD3D12:              "d3d12",
	RendererVulkan:             "vulkan",
	RendererNvn:                "nvn",
	RendererXboxOneD3D12:       "xboxone-d3d12",
	RendererGameCoreXboxOne:    "gamecore-xboxone",
	RendererGameCoreXboxSeries: "gamecore-xboxseries",
	RendererPS5:                "ps5",
	RendererPS5NGGC:            "ps5-nggc",
}

func (r Renderer) String() string {
	if name, ok := rendererNames[r]; ok {
		return name
	}
	return fmt.Sprintf("renderer(%d)", int32(r))
}

// Backend maps the renderer to the closest gputypes backend.
// Console and null renderers map to BackendEmpty.
func (r Renderer) Backend() gputypes.Backend {
	switch r {
	case RendererVulkan:
		return gputypes.BackendVulkan
	case RendererMetal:
		return gputypes.BackendMetal
	case RendererD3D12, RendererXboxOneD3D12, RendererGameCoreXboxOne, RendererGameCoreXboxSeries:
		return gputypes.BackendDX12
	case RendererOpenGLES20, RendererOpenGLES30, RendererOpenGLCore:
		return gputypes.BackendGL
	default:
		return gputypes.BackendEmpty
	}
}
