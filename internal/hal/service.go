package hal

import (
	"log/slog"
	"sync"
	"time"

	"github.com/smazurov/lightnode/internal/events"
	"github.com/smazurov/lightnode/internal/metrics"
	"github.com/smazurov/lightnode/internal/sysfs"
)

// Service owns the light state store and renders state changes to device
// control files. One mutex serializes all mutation and rendering: battery,
// notification and attention updates read-modify-write the same store and
// immediately re-render the same physical RGB LED.
type Service struct {
	mu       sync.Mutex
	writer   sysfs.Writer
	controls Controls
	logger   *slog.Logger
	bus      *events.Bus
	metrics  *metrics.Metrics
	override ColorOverride

	attentionEnabled bool

	// Last-known requests for the lights competing for the RGB LED.
	battery        Request
	notification   Request
	attention      Request
	attentionLevel int32

	lastBacklightMode  BrightnessMode
	persistenceEnabled bool

	// Capabilities probed once at construction.
	backlightControl string
	buttonPresent    bool
}

// Options configures a Service. Writer and Controls are required; Bus and
// Metrics are optional.
type Options struct {
	Writer          sysfs.Writer
	Controls        Controls
	Logger          *slog.Logger
	Bus             *events.Bus
	Metrics         *metrics.Metrics
	Override        ColorOverride
	EnableAttention bool
}

// New creates a Service and probes device presence once: the backlight
// target (LED-class node preferred, panel node as fallback) and button
// LED existence are cached for the process lifetime.
func New(opts *Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		writer:           opts.Writer,
		controls:         opts.Controls,
		logger:           logger,
		bus:              opts.Bus,
		metrics:          opts.Metrics,
		override:         opts.Override,
		attentionEnabled: opts.EnableAttention,
	}

	s.backlightControl = opts.Controls.PanelBacklight
	if opts.Writer.Exists(opts.Controls.LCDBacklight) {
		s.backlightControl = opts.Controls.LCDBacklight
	}
	s.buttonPresent = opts.Writer.Exists(opts.Controls.ButtonBacklight)

	logger.Info("Light service initialized",
		"backlight_control", s.backlightControl,
		"button_present", s.buttonPresent,
		"attention_enabled", s.attentionEnabled,
		"color_override", s.override.Forced)

	return s
}

// Lights returns the ordered list of available light identifiers. The
// list is fixed at startup; buttons appear only when the button LED
// control was present at construction.
func (s *Service) Lights() []Type {
	lights := []Type{Backlight, Battery}
	if s.buttonPresent {
		lights = append(lights, Buttons)
	}
	lights = append(lights, Notifications)
	if s.attentionEnabled {
		lights = append(lights, Attention)
	}
	return lights
}

// SetLightState applies a request to the addressed light. Battery,
// notification and attention updates re-run arbitration and re-render the
// shared RGB LED; backlight and buttons render directly. Unknown lights
// return ErrUnsupportedLight. Device write failures surface as
// ErrDeviceWrite only on the backlight and buttons paths; the RGB paths
// have no failure-reporting channel and log instead.
func (s *Service) SetLightState(light Type, req Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch light {
	case Backlight:
		err = s.setBacklight(req)
	case Battery:
		s.battery = req
		s.renderShared()
	case Buttons:
		err = s.setButtons(req)
	case Notifications:
		s.notification = req
		s.renderShared()
	case Attention:
		if !s.attentionEnabled {
			return ErrUnsupportedLight
		}
		s.setAttention(req)
		s.renderShared()
	default:
		return ErrUnsupportedLight
	}
	if err != nil {
		return err
	}

	s.logger.Debug("Light state applied",
		"light", string(light),
		"color", req.Color,
		"flash_mode", req.Flash.String())

	if s.metrics != nil {
		s.metrics.LightRequests.WithLabelValues(string(light)).Inc()
	}
	if s.bus != nil {
		active, _ := s.activeLight()
		s.bus.Publish(events.LightChangedEvent{
			Light:     string(light),
			Color:     req.Color,
			FlashMode: req.Flash.String(),
			Active:    string(active),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
	return nil
}

// setAttention records the attention request. The attention level mirrors
// the timed flash duration; any other flash mode clears it.
func (s *Service) setAttention(req Request) {
	s.attention = req
	if req.Flash == FlashTimed {
		s.attentionLevel = req.FlashOnMs
	} else {
		s.attentionLevel = 0
	}
}

// write performs one control write. Failures are reported on the event
// bus and to the caller but never abort sibling writes.
func (s *Service) write(control string, value int) bool {
	ok := s.writer.WriteInt(control, value)
	if !ok && s.bus != nil {
		s.bus.Publish(events.DeviceWriteFailedEvent{
			Control:   control,
			Value:     value,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
	return ok
}

// Snapshot is a read-only view of the store for the state endpoint.
type Snapshot struct {
	Battery        Request
	Notification   Request
	Attention      Request
	AttentionLevel int32
	Active         Type
	BacklightMode  BrightnessMode
	LowPersistence bool
	ButtonPresent  bool
}

// State returns a consistent snapshot of the store.
func (s *Service) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, _ := s.activeLight()
	return Snapshot{
		Battery:        s.battery,
		Notification:   s.notification,
		Attention:      s.attention,
		AttentionLevel: s.attentionLevel,
		Active:         active,
		BacklightMode:  s.lastBacklightMode,
		LowPersistence: s.persistenceEnabled,
		ButtonPresent:  s.buttonPresent,
	}
}
