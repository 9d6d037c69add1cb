package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 3002, s.Server.Port)
	assert.Empty(t, s.Server.DataDir)
	assert.Equal(t, "http://localhost:3002", s.Client.APIURL)
	assert.InDelta(t, 5.0, s.Client.RatePerSecond, 0.0001)
	assert.Equal(t, 10*time.Second, s.Client.Timeout)
}
