package room

import (
	"modernblackjack-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages records the messages and fans them out to the clients.
// Note: this must only be called from within the run loop
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m

	data := &playable.Response{
		Key:  "logs",
		Data: messages,
	}

	for _, client := range s.Clients() {
		client.Send(data)
	}
}
