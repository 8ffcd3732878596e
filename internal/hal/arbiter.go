package hal

// activeLight decides which logical light currently owns the shared RGB
// LED. Priority, highest first: an active attention request (feature
// enabled, non-zero level, lit color), then a lit battery, then the
// notification state. The notification request is returned even when
// unlit, which correctly renders the LED fully off. Deterministic and
// side-effect free; callers hold the lock.
func (s *Service) activeLight() (Type, Request) {
	if s.attentionEnabled && s.attentionLevel > 0 && isLit(s.attention.Color) {
		return Attention, s.attention
	}
	if isLit(s.battery.Color) {
		return Battery, s.battery
	}
	return Notifications, s.notification
}

// renderShared re-runs arbitration and renders the winner onto the RGB
// LED. Invoked after every mutation of battery, notification or attention
// state; callers hold the lock.
func (s *Service) renderShared() {
	_, req := s.activeLight()
	s.renderRGB(req)
}
