package hal

// setButtons writes the blue-channel byte of the request color to the
// button backlight control. A device without the button LED accepts and
// ignores the request. Callers hold the lock.
func (s *Service) setButtons(req Request) error {
	if !s.buttonPresent {
		return nil
	}
	if !s.write(s.controls.ButtonBacklight, int(req.Color&0xFF)) {
		return ErrDeviceWrite
	}
	return nil
}
