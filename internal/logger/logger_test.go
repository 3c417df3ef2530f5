package logger

import (
	"testing"
	"token-arena/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	l := New(config.LogConfig{Pretty: false, Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l = New(config.LogConfig{Pretty: true, Level: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
