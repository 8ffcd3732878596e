package hal

import "testing"

func TestSteadyRenderWritesAllChannels(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w)

	// Opaque orange-ish color, no flash.
	if err := svc.SetLightState(Notifications, Request{Color: 0xFFFF8000}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		control string
		want    int
	}{
		{controls.RedBrightness, 0xFF},
		{controls.GreenBrightness, 0x80},
		{controls.BlueBrightness, 0x00},
	}
	for _, tt := range tests {
		values := w.valuesWritten(tt.control)
		if len(values) != 1 || values[0] != tt.want {
			t.Errorf("writes to %s = %v, want [%d]", tt.control, values, tt.want)
		}
	}

	for _, control := range []string{controls.RedBlink, controls.GreenBlink, controls.BlueBlink} {
		if w.wroteTo(control) {
			t.Errorf("blink control %s written on steady render", control)
		}
	}
}

func TestSymmetricBlinkOnlyTouchesLitChannels(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w)

	// Green notification, symmetric 500/500 blink, battery unlit.
	req := Request{Color: 0xFF00FF00, Flash: FlashTimed, FlashOnMs: 500, FlashOffMs: 500}
	if err := svc.SetLightState(Notifications, req); err != nil {
		t.Fatal(err)
	}

	green := w.valuesWritten(controls.GreenBlink)
	if len(green) != 1 || green[0] != 2 {
		t.Errorf("green blink writes = %v, want [2]", green)
	}
	// Blink-lit channel gets its brightness zeroed after the blink write.
	greenBrightness := w.valuesWritten(controls.GreenBrightness)
	if len(greenBrightness) != 1 || greenBrightness[0] != 0 {
		t.Errorf("green brightness writes = %v, want [0]", greenBrightness)
	}

	// Zero-intensity channels are left untouched entirely.
	for _, control := range []string{
		controls.RedBlink, controls.RedBrightness,
		controls.BlueBlink, controls.BlueBrightness,
	} {
		if w.wroteTo(control) {
			t.Errorf("control %s written for zero-intensity channel", control)
		}
	}
}

func TestAsymmetricBlinkCode(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w)

	req := Request{Color: 0xFFFF0000, Flash: FlashTimed, FlashOnMs: 100, FlashOffMs: 50}
	if err := svc.SetLightState(Battery, req); err != nil {
		t.Fatal(err)
	}

	red := w.valuesWritten(controls.RedBlink)
	if len(red) != 1 || red[0] != 1 {
		t.Errorf("red blink writes = %v, want [1]", red)
	}
}

func TestHardwareFlashRendersSteady(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w)

	// Hardware flash carries no timed durations, so the render is steady.
	req := Request{Color: 0xFF0000FF, Flash: FlashHardware, FlashOnMs: 100, FlashOffMs: 100}
	if err := svc.SetLightState(Notifications, req); err != nil {
		t.Fatal(err)
	}

	if w.wroteTo(controls.BlueBlink) {
		t.Error("blink control written for hardware flash mode")
	}
	blue := w.valuesWritten(controls.BlueBrightness)
	if len(blue) != 1 || blue[0] != 0xFF {
		t.Errorf("blue brightness writes = %v, want [255]", blue)
	}
}

func TestFailedBlinkWriteSkipsBrightnessZero(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	w.fail[controls.RedBlink] = true
	svc := newTestService(t, w)

	// White symmetric blink; red blink control is broken.
	req := Request{Color: 0xFFFFFFFF, Flash: FlashTimed, FlashOnMs: 200, FlashOffMs: 200}
	if err := svc.SetLightState(Notifications, req); err != nil {
		t.Fatal(err)
	}

	// Red brightness must not be zeroed after the failed blink write.
	if w.wroteTo(controls.RedBrightness) {
		t.Errorf("red brightness writes = %v, want none after failed blink write", w.valuesWritten(controls.RedBrightness))
	}

	// Sibling channels proceed regardless of the red failure.
	for _, control := range []string{controls.GreenBlink, controls.BlueBlink} {
		values := w.valuesWritten(control)
		if len(values) != 1 || values[0] != 2 {
			t.Errorf("writes to %s = %v, want [2]", control, values)
		}
	}
}

func TestColorOverrideSubstitutesLitColor(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w, func(o *Options) {
		o.Override = ColorOverride{Forced: true, Value: 0xFF0000}
	})

	// A lit blue request renders as the forced red on single-color hardware.
	if err := svc.SetLightState(Notifications, Request{Color: 0xFF0000FF}); err != nil {
		t.Fatal(err)
	}

	red := w.valuesWritten(controls.RedBrightness)
	blue := w.valuesWritten(controls.BlueBrightness)
	if len(red) != 1 || red[0] != 0xFF {
		t.Errorf("red brightness writes = %v, want [255] (override)", red)
	}
	if len(blue) != 1 || blue[0] != 0 {
		t.Errorf("blue brightness writes = %v, want [0] (override)", blue)
	}
}

func TestColorOverrideLeavesUnlitAlone(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w, func(o *Options) {
		o.Override = ColorOverride{Forced: true, Value: 0xFF0000}
	})

	if err := svc.SetLightState(Notifications, Request{Color: 0xFF000000}); err != nil {
		t.Fatal(err)
	}

	// Unlit request must still turn everything off, not force the override.
	for _, control := range []string{controls.RedBrightness, controls.GreenBrightness, controls.BlueBrightness} {
		values := w.valuesWritten(control)
		if len(values) != 1 || values[0] != 0 {
			t.Errorf("writes to %s = %v, want [0]", control, values)
		}
	}
}
