package excuse

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Is(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{NewInvalidRequest("empty"), ErrInvalidRequest},
		{NewConfiguration("no key"), ErrConfiguration},
		{NewAIService("backend down", errors.New("boom")), ErrAIService},
		{NewProviderMismatch("wrong provider"), ErrProviderMismatch},
	}

	for _, c := range cases {
		if !errors.Is(c.err, c.sentinel) {
			t.Errorf("%v should match %v", c.err, c.sentinel)
		}
	}

	// Kinds must not match each other's sentinels.
	if errors.Is(NewInvalidRequest("x"), ErrConfiguration) {
		t.Error("invalid request must not match configuration sentinel")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAIService("generation failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestAppError_WrappedThroughFmt(t *testing.T) {
	// Upper tiers wrap with %w; classification must survive.
	inner := NewAIService("quota exceeded", nil)
	outer := fmt.Errorf("dispatch failed: %w", inner)

	kind, ok := KindOf(outer)
	if !ok {
		t.Fatal("expected an AppError kind")
	}
	if kind != KindAIService {
		t.Errorf("expected KindAIService, got %v", kind)
	}
}

func TestKindOf_NonAppError(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain errors carry no kind")
	}
}

func TestKind_String(t *testing.T) {
	if KindAIService.String() != "ai_service" {
		t.Errorf("unexpected name %q", KindAIService.String())
	}
	if Kind(99).String() != "unknown" {
		t.Error("out-of-range kinds should stringify as unknown")
	}
}
