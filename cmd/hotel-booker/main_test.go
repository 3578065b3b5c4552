package main

import (
	"context"
	"log/slog"
	"testing"

	"hotelBooker/internal/lib/logger/handlers/slogpretty"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		env        string
		debug      bool
		prettyType bool
	}{
		{env: envLocal, debug: true, prettyType: true},
		{env: envDev, debug: true},
		{env: envProd},
		{env: "staging"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.env, func(t *testing.T) {
			t.Parallel()

			log := setupLogger(tc.env)

			assert.NotNil(t, log)
			assert.Equal(t, tc.debug, log.Enabled(context.Background(), slog.LevelDebug))
			_, isPretty := log.Handler().(*slogpretty.PrettyHandler)
			assert.Equal(t, tc.prettyType, isPretty)
		})
	}
}
