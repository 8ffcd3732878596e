package hal

import "fmt"

// Controls holds the sysfs control file paths for every device the
// service renders to. The paths are part of the platform contract; tests
// relocate them under a temp root via the sysfs writer.
type Controls struct {
	RedBrightness   string
	RedBlink        string
	GreenBrightness string
	GreenBlink      string
	BlueBrightness  string
	BlueBlink       string

	// LCDBacklight is preferred when present; PanelBacklight is the
	// fallback target.
	LCDBacklight   string
	PanelBacklight string

	ButtonBacklight string

	// Persistence toggles the display low-persistence mode.
	Persistence string
}

// DefaultControls returns the fixed platform control paths.
func DefaultControls() Controls {
	return Controls{
		RedBrightness:   "/sys/class/leds/red/brightness",
		RedBlink:        "/sys/class/leds/red/blink",
		GreenBrightness: "/sys/class/leds/green/brightness",
		GreenBlink:      "/sys/class/leds/green/blink",
		BlueBrightness:  "/sys/class/leds/blue/brightness",
		BlueBlink:       "/sys/class/leds/blue/blink",
		LCDBacklight:    "/sys/class/leds/lcd-backlight/brightness",
		PanelBacklight:  "/sys/class/backlight/panel0-backlight/brightness",
		ButtonBacklight: "/sys/class/leds/button-backlight/brightness",
		Persistence:     "/sys/class/graphics/fb0/msm_fb_persist_mode",
	}
}

// ColorOverride substitutes a fixed RGB value for any lit request on the
// shared RGB LED. Used on hardware with a single-color LED where the
// requested color is meaningless; unlit requests still turn the LED off.
type ColorOverride struct {
	Forced bool
	Value  uint32
}

// ParseColorOverride parses a configuration value: empty or "direct"
// disables the override, anything else is a hex RGB value such as
// "0xFF0000" or "ff0000".
func ParseColorOverride(s string) (ColorOverride, error) {
	if s == "" || s == "direct" {
		return ColorOverride{}, nil
	}

	var value uint32
	if _, err := fmt.Sscanf(s, "0x%X", &value); err != nil {
		if _, err := fmt.Sscanf(s, "%X", &value); err != nil {
			return ColorOverride{}, fmt.Errorf("invalid color override %q", s)
		}
	}
	if value > 0xFFFFFF {
		return ColorOverride{}, fmt.Errorf("color override %q exceeds 24-bit RGB", s)
	}
	return ColorOverride{Forced: true, Value: value}, nil
}
