// Package zap adapts go.uber.org/zap to the resolvex Logger interface.
package zap

import (
	"github.com/unkn0wn-root/resolvex"
	"go.uber.org/zap"
)

var _ resolvex.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f resolvex.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f resolvex.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f resolvex.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f resolvex.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f resolvex.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
