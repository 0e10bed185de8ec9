package state

import (
	"context"
	"testing"
	"time"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil env")
	}
	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("Uptime() = %v, want something recent", env.Uptime())
	}

	// same env instance on repeated lookups
	if EnvFromContext(ctx) != env {
		t.Error("EnvFromContext() returned different instances for the same context")
	}
}

func TestEnvFromContext_MissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for context without env")
		}
	}()
	EnvFromContext(context.Background())
}
