package metrics

import "github.com/smazurov/lightnode/internal/sysfs"

// InstrumentedWriter wraps a sysfs.Writer and counts every control write.
type InstrumentedWriter struct {
	next    sysfs.Writer
	metrics *Metrics
}

// NewInstrumentedWriter wraps w so that all writes are counted on m.
func NewInstrumentedWriter(w sysfs.Writer, m *Metrics) *InstrumentedWriter {
	return &InstrumentedWriter{next: w, metrics: m}
}

// WriteInt delegates to the wrapped writer and records the outcome.
func (i *InstrumentedWriter) WriteInt(path string, value int) bool {
	ok := i.next.WriteInt(path, value)
	result := "ok"
	if !ok {
		result = "error"
	}
	i.metrics.DeviceWrites.WithLabelValues(path, result).Inc()
	return ok
}

// Exists delegates to the wrapped writer.
func (i *InstrumentedWriter) Exists(path string) bool {
	return i.next.Exists(path)
}
