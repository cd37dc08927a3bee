package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

// logAdapter routes Watermill's logs into logger.Logger. Watermill's
// info-level chatter (per-message acks, polling) is demoted to debug.
type logAdapter struct{ log logger.Logger }

func newLogAdapter(log logger.Logger) *logAdapter {
	return &logAdapter{log: log.With("component", "watermill")}
}

func (a *logAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}

func (a *logAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *logAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *logAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *logAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &logAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
