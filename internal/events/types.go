package events

// Event type constants for kelindar/event.
const (
	TypeLightChanged uint32 = iota + 1
	TypeDeviceWriteFailed
	TypeBacklightModeChanged
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// LightChangedEvent is published after a light request has been accepted
// and rendered.
type LightChangedEvent struct {
	Light     string `json:"light" example:"notifications" doc:"Logical light identifier"`
	Color     uint32 `json:"color" example:"4278255360" doc:"Requested ARGB color"`
	FlashMode string `json:"flash_mode" example:"timed" doc:"Flash mode of the request"`
	Active    string `json:"active" example:"notifications" doc:"Light currently driving the shared RGB LED"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightChangedEvent.
func (e LightChangedEvent) Type() uint32 { return TypeLightChanged }

// DeviceWriteFailedEvent is published when a control file write fails.
// Failures are non-fatal to the render pass; this event exists for
// observability.
type DeviceWriteFailedEvent struct {
	Control   string `json:"control" example:"/sys/class/leds/red/blink" doc:"Control file path"`
	Value     int    `json:"value" example:"2" doc:"Value that failed to write"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for DeviceWriteFailedEvent.
func (e DeviceWriteFailedEvent) Type() uint32 { return TypeDeviceWriteFailed }

// BacklightModeChangedEvent is published when the display crosses the
// low-persistence boundary in either direction.
type BacklightModeChangedEvent struct {
	LowPersistence bool   `json:"low_persistence" example:"true" doc:"Whether low-persistence mode is now active"`
	Brightness     int    `json:"brightness" example:"128" doc:"Panel brightness written with the transition"`
	Timestamp      string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for BacklightModeChangedEvent.
func (e BacklightModeChangedEvent) Type() uint32 { return TypeBacklightModeChanged }
