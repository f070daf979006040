package unityjs

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotLoaded indicates the managed load hook has not run (or the runtime was unloaded).
	ErrNotLoaded = errors.New("unityjs: managed runtime not loaded")

	// ErrNoGraphics indicates the engine did not provide a graphics interface.
	ErrNoGraphics = errors.New("unityjs: graphics interface not available")

	// ErrNullHandle indicates the managed runtime returned a null reference.
	ErrNullHandle = errors.New("unityjs: null managed handle")

	// ErrMissingEntryPoint indicates the render-update class or method could not be resolved.
	ErrMissingEntryPoint = errors.New("unityjs: missing managed entry point")

	// ErrManagedException indicates a managed call returned with a pending exception.
	ErrManagedException = errors.New("unityjs: managed exception")

	// ErrAttachFailed indicates the calling thread could not be attached to the managed runtime.
	ErrAttachFailed = errors.New("unityjs: thread attach failed")

	// ErrNullCallback indicates a null native callback address was registered.
	ErrNullCallback = errors.New("unityjs: null callback address")
)

// EntryPointError describes a failed class or static method lookup.
type EntryPointError struct {
	Class     string
	Method    string
	Signature string
	Err       error // ErrNullHandle or ErrManagedException
}

// Error implements the error interface.
func (e *EntryPointError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("unityjs: find class %s: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("unityjs: static method %s.%s%s: %v", e.Class, e.Method, e.Signature, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EntryPointError) Unwrap() error { return e.Err }

// Is makes every EntryPointError match ErrMissingEntryPoint.
func (e *EntryPointError) Is(target error) bool {
	return target == ErrMissingEntryPoint
}

// IsMissingEntryPoint returns true if err reports an unresolved entry point.
func IsMissingEntryPoint(err error) bool {
	var epErr *EntryPointError
	return errors.As(err, &epErr)
}
