package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"modernblackjack-server/pkg/deck"
)

// Playable is a game that can be played
type Playable interface {
	// Action performs with a message
	// If response is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for the connected client
	Action(message *PayloadIn) (response *Response, updateState bool, err error)

	// GetState returns the current state of the game for the display client
	GetState() (*Response, error)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogMessage is the format a game should send log messages in
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is a container for a message sent to the display client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	val, ok := a[key]
	if !ok {
		return "", false
	}

	s, err := cast.ToStringE(val)
	if err != nil {
		return "", false
	}

	return s, true
}

// GetInt returns an integer value for the given key
// JSON numbers arrive as float64; string values are coerced as well so the
// bet input field can be passed through unparsed
func (a AdditionalData) GetInt(key string) (int, bool) {
	val, ok := a[key]
	if !ok {
		return 0, false
	}

	n, err := cast.ToIntE(val)
	if err != nil {
		return 0, false
	}

	return n, true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	val, ok := a[key]
	if !ok {
		return false, false
	}

	b, err := cast.ToBoolE(val)
	if err != nil {
		return false, false
	}

	return b, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(format, a...)}
}
