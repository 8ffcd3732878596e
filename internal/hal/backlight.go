package hal

import (
	"time"

	"github.com/smazurov/lightnode/internal/events"
)

// lowPersistenceBrightness is the fixed panel brightness applied while
// low-persistence mode is active, replacing the luma-derived value.
const lowPersistenceBrightness = 0x80

// setBacklight renders a backlight request: luma-derived brightness to the
// cached backlight node, with the persistence control toggled exactly once
// when the request crosses the low-persistence boundary. Callers hold the
// lock.
func (s *Service) setBacklight(req Request) error {
	wantsLowPersistence := req.Brightness == BrightnessLowPersistence

	brightness := rgbaToBrightness(req.Color)
	if wantsLowPersistence {
		brightness = lowPersistenceBrightness
	}

	if wantsLowPersistence != s.persistenceEnabled {
		value := 0
		if wantsLowPersistence {
			value = 1
		}
		// The toggle result is not reported to the caller; the brightness
		// write below is the authoritative outcome for this path.
		s.write(s.controls.Persistence, value)
		s.persistenceEnabled = wantsLowPersistence

		s.logger.Info("Display persistence mode changed",
			"low_persistence", wantsLowPersistence,
			"brightness", brightness)

		if s.metrics != nil {
			gauge := 0.0
			if wantsLowPersistence {
				gauge = 1.0
			}
			s.metrics.PersistenceMode.Set(gauge)
		}
		if s.bus != nil {
			s.bus.Publish(events.BacklightModeChangedEvent{
				LowPersistence: wantsLowPersistence,
				Brightness:     brightness,
				Timestamp:      time.Now().Format(time.RFC3339),
			})
		}
	}
	s.lastBacklightMode = req.Brightness

	if !s.write(s.backlightControl, brightness) {
		return ErrDeviceWrite
	}
	if s.metrics != nil {
		s.metrics.PanelBrightness.Set(float64(brightness))
	}
	return nil
}
