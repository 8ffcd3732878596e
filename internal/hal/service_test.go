package hal

import (
	"errors"
	"log/slog"
	"os"
	"slices"
	"testing"
)

// fakeWriter records control writes and simulates presence/failures.
type fakeWriter struct {
	writes  []controlWrite
	present map[string]bool
	fail    map[string]bool
}

type controlWrite struct {
	path  string
	value int
	ok    bool
}

func newFakeWriter(present ...string) *fakeWriter {
	w := &fakeWriter{
		present: make(map[string]bool),
		fail:    make(map[string]bool),
	}
	for _, p := range present {
		w.present[p] = true
	}
	return w
}

func (f *fakeWriter) WriteInt(path string, value int) bool {
	ok := !f.fail[path]
	f.writes = append(f.writes, controlWrite{path: path, value: value, ok: ok})
	return ok
}

func (f *fakeWriter) Exists(path string) bool {
	return f.present[path]
}

// valuesWritten returns the successful values written to one control, in order.
func (f *fakeWriter) valuesWritten(path string) []int {
	var values []int
	for _, w := range f.writes {
		if w.path == path && w.ok {
			values = append(values, w.value)
		}
	}
	return values
}

func (f *fakeWriter) wroteTo(path string) bool {
	return len(f.valuesWritten(path)) > 0
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newTestService(t *testing.T, w *fakeWriter, opts ...func(*Options)) *Service {
	t.Helper()
	o := &Options{
		Writer:   w,
		Controls: DefaultControls(),
		Logger:   testLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return New(o)
}

func TestSetLightStateUnsupported(t *testing.T) {
	svc := newTestService(t, newFakeWriter())

	if err := svc.SetLightState("disco", Request{}); !errors.Is(err, ErrUnsupportedLight) {
		t.Errorf("SetLightState(disco) error = %v, want ErrUnsupportedLight", err)
	}
}

func TestSetLightStateAttentionDisabled(t *testing.T) {
	svc := newTestService(t, newFakeWriter())

	err := svc.SetLightState(Attention, Request{Color: 0xFFFF0000})
	if !errors.Is(err, ErrUnsupportedLight) {
		t.Errorf("attention without feature flag: error = %v, want ErrUnsupportedLight", err)
	}
}

func TestLightsOrdering(t *testing.T) {
	controls := DefaultControls()

	tests := []struct {
		name    string
		present []string
		opts    []func(*Options)
		want    []Type
	}{
		{
			name: "minimal device",
			want: []Type{Backlight, Battery, Notifications},
		},
		{
			name:    "with button LED",
			present: []string{controls.ButtonBacklight},
			want:    []Type{Backlight, Battery, Buttons, Notifications},
		},
		{
			name:    "attention enabled",
			present: []string{controls.ButtonBacklight},
			opts:    []func(*Options){func(o *Options) { o.EnableAttention = true }},
			want:    []Type{Backlight, Battery, Buttons, Notifications, Attention},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, newFakeWriter(tt.present...), tt.opts...)
			if got := svc.Lights(); !slices.Equal(got, tt.want) {
				t.Errorf("Lights() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtonsWritesBlueByte(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter(controls.ButtonBacklight)
	svc := newTestService(t, w)

	if err := svc.SetLightState(Buttons, Request{Color: 0x123456}); err != nil {
		t.Fatalf("SetLightState(buttons) error = %v", err)
	}

	got := w.valuesWritten(controls.ButtonBacklight)
	if len(got) != 1 || got[0] != 0x56 {
		t.Errorf("button control writes = %v, want [0x56]", got)
	}
}

func TestButtonsAbsentIsNoop(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter()
	svc := newTestService(t, w)

	if err := svc.SetLightState(Buttons, Request{Color: 0xFF}); err != nil {
		t.Fatalf("SetLightState(buttons) on absent device error = %v", err)
	}
	if w.wroteTo(controls.ButtonBacklight) {
		t.Error("button control written despite device absence")
	}
}

func TestButtonsWriteFailure(t *testing.T) {
	controls := DefaultControls()
	w := newFakeWriter(controls.ButtonBacklight)
	w.fail[controls.ButtonBacklight] = true
	svc := newTestService(t, w)

	err := svc.SetLightState(Buttons, Request{Color: 0xFF})
	if !errors.Is(err, ErrDeviceWrite) {
		t.Errorf("SetLightState(buttons) with failing control error = %v, want ErrDeviceWrite", err)
	}
}

func TestStateSnapshot(t *testing.T) {
	svc := newTestService(t, newFakeWriter(), func(o *Options) { o.EnableAttention = true })

	if err := svc.SetLightState(Battery, Request{Color: 0xFFFF0000}); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetLightState(Notifications, Request{Color: 0xFF00FF00, Flash: FlashTimed, FlashOnMs: 500, FlashOffMs: 500}); err != nil {
		t.Fatal(err)
	}

	snap := svc.State()
	if snap.Active != Battery {
		t.Errorf("Active = %v, want battery", snap.Active)
	}
	if snap.Battery.Color != 0xFFFF0000 {
		t.Errorf("Battery.Color = %#x, want 0xFFFF0000", snap.Battery.Color)
	}
	if snap.Notification.FlashOnMs != 500 {
		t.Errorf("Notification.FlashOnMs = %d, want 500", snap.Notification.FlashOnMs)
	}
}
