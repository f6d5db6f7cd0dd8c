package room

import (
	"familyhub-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages, keeping only the most recent
// Note: this must only be called from within the run loop
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
