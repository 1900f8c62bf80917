package resolvex

import (
	"context"
	"errors"
	"testing"
)

// ==============================
// Error translation
// ==============================

// TestCatchRecovery: an always-failing provider plus a translator that
// returns a constant yields a provider that always succeeds with it.
func TestCatchRecovery(t *testing.T) {
	inner := ProviderFunc[string, string](func(string) (string, error) {
		return "", errors.New("always fails")
	})
	p := Catch[string, string](inner, func(string, error) (string, error) {
		return "default", nil
	})

	for _, id := range []string{"a", "b", "c"} {
		v, err := p.Resolve(id)
		if err != nil {
			t.Fatalf("Resolve(%q) failed through recovery: %v", id, err)
		}
		if v != "default" {
			t.Fatalf("Resolve(%q)=%q, want default", id, v)
		}
	}
}

// TestCatchRetypes: a translator mapping e1 to e2 yields a provider failing
// with e2, never e1.
func TestCatchRetypes(t *testing.T) {
	e1 := errors.New("inner taxonomy")
	e2 := errors.New("outer taxonomy")

	inner := ProviderFunc[string, int](func(string) (int, error) { return 0, e1 })
	p := Catch[string, int](inner, func(_ string, err error) (int, error) {
		if !errors.Is(err, e1) {
			t.Fatalf("translator saw %v, want e1", err)
		}
		return 0, e2
	})

	_, err := p.Resolve("k")
	if !errors.Is(err, e2) {
		t.Fatalf("err=%v, want e2", err)
	}
	if errors.Is(err, e1) {
		t.Fatalf("e1 leaked through translation")
	}
}

// TestCatchRethrowSame: the translator may rethrow the identical error.
func TestCatchRethrowSame(t *testing.T) {
	e := errors.New("kept")
	inner := ProviderFunc[string, int](func(string) (int, error) { return 0, e })
	p := Catch[string, int](inner, func(_ string, err error) (int, error) { return 0, err })

	if _, err := p.Resolve("k"); !errors.Is(err, e) {
		t.Fatalf("err=%v, want original", err)
	}
}

// TestCatchSkippedOnSuccess: the translator must not run when the inner
// provider succeeds.
func TestCatchSkippedOnSuccess(t *testing.T) {
	inner := ProviderFunc[string, int](func(string) (int, error) { return 3, nil })
	ran := false
	p := Catch[string, int](inner, func(string, error) (int, error) {
		ran = true
		return 0, nil
	})

	if v, err := p.Resolve("k"); err != nil || v != 3 {
		t.Fatalf("Resolve: v=%d err=%v", v, err)
	}
	if ran {
		t.Fatalf("translator ran on success")
	}
}

// TestCatchReceivesIdentifier: the translator sees the failed identifier.
func TestCatchReceivesIdentifier(t *testing.T) {
	inner := ProviderFunc[string, string](func(string) (string, error) {
		return "", errors.New("no")
	})
	p := Catch[string, string](inner, func(id string, _ error) (string, error) {
		return "for:" + id, nil
	})

	if v, _ := p.Resolve("thumb-9"); v != "for:thumb-9" {
		t.Fatalf("translator id mismatch: %q", v)
	}
}

func TestFallbackNeverFails(t *testing.T) {
	inner := ProviderFunc[int, int](func(int) (int, error) { return 0, errors.New("down") })
	p := Fallback[int, int](inner, func(id int, _ error) int { return -id })

	v, err := p.Resolve(5)
	if err != nil {
		t.Fatalf("Fallback provider failed: %v", err)
	}
	if v != -5 {
		t.Fatalf("v=%d, want -5", v)
	}
}

func TestCatchContextTranslatorMayBlock(t *testing.T) {
	ctx := context.Background()
	inner := ProviderContextFunc[string, int](func(context.Context, string) (int, error) {
		return 0, errors.New("primary down")
	})
	secondary := ProviderContextFunc[string, int](func(_ context.Context, id string) (int, error) {
		return len(id), nil
	})

	// recovery that itself awaits further work: retry against a secondary
	p := CatchContext[string, int](inner, func(ctx context.Context, id string, _ error) (int, error) {
		return secondary.ResolveContext(ctx, id)
	})

	v, err := p.ResolveContext(ctx, "abcd")
	if err != nil || v != 4 {
		t.Fatalf("ResolveContext: v=%d err=%v", v, err)
	}
}

func TestCatchSyncAndFallbackContext(t *testing.T) {
	ctx := context.Background()
	e2 := errors.New("translated")
	inner := ProviderContextFunc[string, int](func(context.Context, string) (int, error) {
		return 0, errors.New("inner")
	})

	retyped := CatchSync[string, int](inner, func(string, error) (int, error) { return 0, e2 })
	if _, err := retyped.ResolveContext(ctx, "k"); !errors.Is(err, e2) {
		t.Fatalf("err=%v, want translated", err)
	}

	safe := FallbackContext[string, int](inner, func(string, error) int { return 11 })
	if v, err := safe.ResolveContext(ctx, "k"); err != nil || v != 11 {
		t.Fatalf("FallbackContext: v=%d err=%v", v, err)
	}
}
