package hal

// renderRGB converts the winning request into device writes on the RGB
// LED. Blink patterns are delegated to the hardware via the per-channel
// blink controls; this code never maintains timing itself. Callers hold
// the lock.
func (s *Service) renderRGB(req Request) {
	var onMs, offMs int32
	if req.Flash == FlashTimed {
		onMs = req.FlashOnMs
		offMs = req.FlashOffMs
	}

	colorRGB := req.Color & 0xFFFFFF
	if s.override.Forced && isLit(req.Color) {
		colorRGB = s.override.Value
	}

	red := int((colorRGB >> 16) & 0xFF)
	green := int((colorRGB >> 8) & 0xFF)
	blue := int(colorRGB & 0xFF)

	blink := blinkCode(onMs, offMs)
	if blink != 0 {
		// Zero the brightness control only after the blink write succeeds,
		// so a channel is never steady-lit and blink-lit at once. Channels
		// with zero intensity are already off and stay untouched.
		if red != 0 && s.write(s.controls.RedBlink, blink) {
			s.write(s.controls.RedBrightness, 0)
		}
		if green != 0 && s.write(s.controls.GreenBlink, blink) {
			s.write(s.controls.GreenBrightness, 0)
		}
		if blue != 0 && s.write(s.controls.BlueBlink, blink) {
			s.write(s.controls.BlueBrightness, 0)
		}
		return
	}

	// Steady: write all three channels, including explicit zeros.
	s.write(s.controls.RedBrightness, red)
	s.write(s.controls.GreenBrightness, green)
	s.write(s.controls.BlueBrightness, blue)
}
