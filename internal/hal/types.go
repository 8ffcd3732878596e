// Package hal implements the light arbitration and rendering engine.
//
// A fixed set of logical lights (backlight, battery, buttons,
// notifications and optionally attention) share two kinds of hardware:
// independent sysfs controls for the backlight and button LEDs, and a
// single physical RGB LED that battery, notification and attention
// requests compete for. The package decides which request owns the RGB
// LED, converts colors and flash timings into brightness and hardware
// blink codes, and writes them to control files.
package hal

import "fmt"

// Type identifies a logical light.
type Type string

// Logical light identifiers, fixed at startup.
const (
	Backlight     Type = "backlight"
	Battery       Type = "battery"
	Buttons       Type = "buttons"
	Notifications Type = "notifications"
	Attention     Type = "attention"
)

// FlashMode selects how a light request flashes.
type FlashMode int

// Flash modes. Timed carries explicit on/off durations; Hardware defers
// timing entirely to the LED driver and renders steady here.
const (
	FlashNone FlashMode = iota
	FlashTimed
	FlashHardware
)

// String returns the wire name of the flash mode.
func (m FlashMode) String() string {
	switch m {
	case FlashTimed:
		return "timed"
	case FlashHardware:
		return "hardware"
	default:
		return "none"
	}
}

// ParseFlashMode converts a wire name to a FlashMode.
func ParseFlashMode(s string) (FlashMode, error) {
	switch s {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	case "hardware":
		return FlashHardware, nil
	default:
		return FlashNone, fmt.Errorf("unknown flash mode %q", s)
	}
}

// BrightnessMode selects how backlight brightness is derived. Only
// meaningful for the backlight light.
type BrightnessMode int

// Brightness modes.
const (
	BrightnessUser BrightnessMode = iota
	BrightnessSensor
	BrightnessLowPersistence
)

// String returns the wire name of the brightness mode.
func (m BrightnessMode) String() string {
	switch m {
	case BrightnessSensor:
		return "sensor"
	case BrightnessLowPersistence:
		return "low_persistence"
	default:
		return "user"
	}
}

// ParseBrightnessMode converts a wire name to a BrightnessMode.
func ParseBrightnessMode(s string) (BrightnessMode, error) {
	switch s {
	case "", "user":
		return BrightnessUser, nil
	case "sensor":
		return BrightnessSensor, nil
	case "low_persistence":
		return BrightnessLowPersistence, nil
	default:
		return BrightnessUser, fmt.Errorf("unknown brightness mode %q", s)
	}
}

// Request is a desired state for one logical light. Color packs ARGB with
// alpha in bits 24-31. FlashOnMs/FlashOffMs are meaningful only with
// FlashTimed; Brightness only for the backlight light.
type Request struct {
	Color      uint32
	Flash      FlashMode
	FlashOnMs  int32
	FlashOffMs int32
	Brightness BrightnessMode
}

// isLit reports whether any RGB channel is non-zero, ignoring alpha.
func isLit(color uint32) bool {
	return color&0x00FFFFFF != 0
}

// rgbaToBrightness converts an ARGB color to a panel brightness using
// integer luma weighting. Channels are scaled by alpha unless the color
// is fully opaque.
func rgbaToBrightness(color uint32) int {
	alpha := (color >> 24) & 0xFF
	red := (color >> 16) & 0xFF
	green := (color >> 8) & 0xFF
	blue := color & 0xFF

	if alpha != 0xFF {
		red = red * alpha / 0xFF
		green = green * alpha / 0xFF
		blue = blue * alpha / 0xFF
	}

	return int((77*red + 150*green + 29*blue) >> 8)
}

// blinkCode maps timed flash durations to the hardware blink register
// value: 2 for symmetric blink, 1 for asymmetric (timing fixed by the
// hardware), 0 for steady.
func blinkCode(onMs, offMs int32) int {
	if onMs > 0 && offMs > 0 {
		if onMs == offMs {
			return 2
		}
		return 1
	}
	return 0
}
