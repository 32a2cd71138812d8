package exchange

import (
	"github.com/rs/zerolog"
)

// WarningSink receives warnings about expected-absence conditions: cases
// where an operation cannot complete automatically but an operator can
// finish it by hand. The hint names the manual next step.
type WarningSink interface {
	Warn(message, hint string)
}

type logWarningSink struct {
	logger zerolog.Logger
}

// NewLogWarningSink returns a WarningSink backed by the given logger.
func NewLogWarningSink(logger zerolog.Logger) WarningSink {
	return logWarningSink{logger: logger}
}

func (s logWarningSink) Warn(message, hint string) {
	s.logger.Warn().Str("hint", hint).Msg(message)
}
