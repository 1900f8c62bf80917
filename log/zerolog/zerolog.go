// Package zerolog adapts rs/zerolog to the resolvex Logger interface.
package zerolog

import (
	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/resolvex"
)

var _ resolvex.Logger = ZerologLogger{}

type ZerologLogger struct{ L zerolog.Logger }

func (z ZerologLogger) Debug(msg string, f resolvex.Fields) {
	z.L.Debug().Fields(map[string]any(f)).Msg(msg)
}
func (z ZerologLogger) Info(msg string, f resolvex.Fields) {
	z.L.Info().Fields(map[string]any(f)).Msg(msg)
}
func (z ZerologLogger) Warn(msg string, f resolvex.Fields) {
	z.L.Warn().Fields(map[string]any(f)).Msg(msg)
}
func (z ZerologLogger) Error(msg string, f resolvex.Fields) {
	z.L.Error().Fields(map[string]any(f)).Msg(msg)
}
