package audiolog

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFormatsLevelMsgAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{std: log.New(&buf, "", 0)}

	l.Warn("control message dropped", F("reason", "queue full"), F("node", 3))

	out := buf.String()
	assert.Contains(t, out, "WARN control message dropped")
	assert.Contains(t, out, "reason=queue full")
	assert.Contains(t, out, "node=3")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestNilLoggerEventNoPanic(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("no-op") })
}
