package coachdesk

import (
	"github.com/rs/zerolog"
)

// ZerologAdapter adapts a zerolog.Logger to the client Logger interface
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps a zerolog logger for use in ClientOptions.Logger
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

func (a *ZerologAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Debug(), msg, keysAndValues)
}

func (a *ZerologAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Info(), msg, keysAndValues)
}

func (a *ZerologAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Warn(), msg, keysAndValues)
}

func (a *ZerologAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.emit(a.logger.Error(), msg, keysAndValues)
}

func (a *ZerologAdapter) emit(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	event.Msg(msg)
}
