package guard

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the guard package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger configures the guard package's logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// reportFields renders a report as structured log fields.
func reportFields(r *Report) []zap.Field {
	fields := []zap.Field{
		zap.String("report_id", r.ID),
		zap.String("message", r.Message()),
		zap.String("payload_type", payloadType(r.Payload())),
	}
	if loc, ok := r.Location(); ok {
		fields = append(fields,
			zap.String("function", loc.Function),
			zap.String("location", loc.String()))
	}
	return fields
}
