package playable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.True(t, before.Before(lm.Time))
	assert.True(t, time.Now().After(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice("test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	_ = json.Unmarshal([]byte(`{"amount":25}`), &data)
	val, ok := data.GetInt("amount")
	a.True(ok)
	a.Equal(25, val)

	// the bet input arrives as a raw string from the client
	data = AdditionalData{"amount": "10"}
	val, ok = data.GetInt("amount")
	a.True(ok)
	a.Equal(10, val)

	data = AdditionalData{"amount": "ten"}
	val, ok = data.GetInt("amount")
	a.False(ok)
	a.Equal(0, val)

	_, ok = data.GetInt("missing")
	a.False(ok)
}

func TestAdditionalData_GetStringAndBool(t *testing.T) {
	a := assert.New(t)

	data := AdditionalData{"name": "dealer", "enabled": true}

	s, ok := data.GetString("name")
	a.True(ok)
	a.Equal("dealer", s)

	b, ok := data.GetBool("enabled")
	a.True(ok)
	a.True(b)

	_, ok = data.GetString("missing")
	a.False(ok)

	_, ok = data.GetBool("missing")
	a.False(ok)
}
