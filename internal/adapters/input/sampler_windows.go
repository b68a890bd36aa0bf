//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"github.com/bnema/honkbreach/internal/domain"
	"golang.org/x/sys/windows"
)

const (
	vkLeftButton = 0x01
	vkEscape     = 0x1B
	keyDownMask  = 0x8000
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

// SystemSampler reads the left mouse button, Escape and the cursor position.
func SystemSampler() (Sampler, error) {
	for _, proc := range []*windows.LazyProc{procGetAsyncKeyState, procGetCursorPos} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("locate %s: %w", proc.Name, err)
		}
	}

	return func() (Sample, error) {
		var pt point
		ok, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
		if ok == 0 {
			return Sample{}, fmt.Errorf("GetCursorPos: %w", err)
		}

		return Sample{
			PrimaryDown: keyDown(vkLeftButton),
			CancelDown:  keyDown(vkEscape),
			Cursor:      domain.Vec2{X: float64(pt.X), Y: float64(pt.Y)},
		}, nil
	}, nil
}

func keyDown(vk uintptr) bool {
	state, _, _ := procGetAsyncKeyState.Call(vk)
	return state&keyDownMask != 0
}
