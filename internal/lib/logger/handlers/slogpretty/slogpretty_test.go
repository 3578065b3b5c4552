package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandlerPrintsMessageAndAttrs(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("op", "test"))

	log.Info("room booked", slog.Int("guests", 2))
	log.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "room booked")
	assert.Contains(t, out, `"op": "test"`)
	assert.Contains(t, out, `"guests": 2`)
	assert.NotContains(t, out, "hidden")
}
