// Package models contains API request and response types.
package models

// HealthData is the health check payload.
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Health status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Body HealthData
}

// VersionData contains version and build information.
type VersionData struct {
	Version   string `json:"version" example:"1.0.0" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"abc123" doc:"Git commit hash"`
	BuildDate string `json:"build_date" example:"2025-01-27" doc:"Build timestamp"`
	GoVersion string `json:"go_version" example:"go1.24" doc:"Go version used for build"`
	Platform  string `json:"platform" example:"linux/arm64" doc:"Build platform"`
}

// VersionResponse is the version endpoint response.
type VersionResponse struct {
	Body VersionData
}

// LightState is the wire form of a light request.
type LightState struct {
	Color          uint32 `json:"color" example:"4294901760" doc:"Packed ARGB color; alpha in bits 24-31"`
	FlashMode      string `json:"flash_mode,omitempty" example:"timed" enum:"none,timed,hardware" doc:"Flash mode"`
	FlashOnMs      int32  `json:"flash_on_ms,omitempty" example:"500" minimum:"0" doc:"Flash on duration in ms (timed only)"`
	FlashOffMs     int32  `json:"flash_off_ms,omitempty" example:"500" minimum:"0" doc:"Flash off duration in ms (timed only)"`
	BrightnessMode string `json:"brightness_mode,omitempty" example:"user" enum:"user,sensor,low_persistence" doc:"Brightness mode (backlight only)"`
}

// LightsData lists the available logical lights.
type LightsData struct {
	Lights []string `json:"lights" example:"backlight,battery,notifications" doc:"Ordered available light identifiers"`
	Count  int      `json:"count" example:"3" doc:"Number of available lights"`
}

// LightsResponse is the light list response.
type LightsResponse struct {
	Body LightsData
}

// StateData is a snapshot of the light state store.
type StateData struct {
	Battery        LightState `json:"battery" doc:"Last battery request"`
	Notification   LightState `json:"notification" doc:"Last notification request"`
	Attention      LightState `json:"attention" doc:"Last attention request"`
	AttentionLevel int32      `json:"attention_level" example:"0" doc:"Attention flash level; 0 means inactive"`
	Active         string     `json:"active" example:"battery" doc:"Light currently driving the shared RGB LED"`
	BacklightMode  string     `json:"backlight_mode" example:"user" doc:"Last applied backlight brightness mode"`
	LowPersistence bool       `json:"low_persistence" example:"false" doc:"Whether display low-persistence mode is active"`
	ButtonPresent  bool       `json:"button_present" example:"true" doc:"Whether the button backlight control exists"`
}

// StateResponse is the state snapshot response.
type StateResponse struct {
	Body StateData
}
