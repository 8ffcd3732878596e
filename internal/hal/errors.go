package hal

import "errors"

var (
	// ErrUnsupportedLight is returned when a request addresses a light
	// that is not in the fixed set for this device.
	ErrUnsupportedLight = errors.New("unsupported light")

	// ErrDeviceWrite is returned by paths that report device failures to
	// the caller (backlight, buttons) when a control write fails.
	ErrDeviceWrite = errors.New("device write failed")
)
