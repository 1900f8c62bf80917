// Package sloghooks implements resolvex.Hooks on top of log/slog, with
// per-event sampling and key redaction so noisy backends cannot flood logs.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/resolvex"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	StoreFaultEvery uint64
	SelfHealEvery   uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	storeFaultCtr atomic.Uint64
	selfHealCtr   atomic.Uint64
}

var _ resolvex.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) StoreFault(key, op string, err error) {
	if h.l == nil || !sample(h.opts.StoreFaultEvery, &h.storeFaultCtr) {
		return
	}
	h.l.Warn("resolvex.store_fault",
		"key", h.redact(key),
		"op", op,
		"err", err)
}

func (h *Hooks) SelfHeal(key, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("resolvex.self_heal",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) StoreRejected(key string) {
	if h.l == nil {
		return
	}
	h.l.Warn("resolvex.store_rejected",
		"key", h.redact(key))
}
