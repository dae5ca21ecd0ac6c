package services_test

import (
	"errors"
	"strings"
	"testing"

	"crosswalk/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrProvider, "mlc", "search", "request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"mlc", "search", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerFallsBackToTransient(t *testing.T) {
	err := services.Wrap(nil, "catalog", "fetch", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestFatalClassification(t *testing.T) {
	cfgErr := services.Wrap(services.ErrConfiguration, "opportunity", "weights", "negative threshold", nil)
	if !services.Fatal(cfgErr) {
		t.Fatal("expected configuration error to be fatal")
	}
	provErr := services.Wrap(services.ErrProvider, "mlc", "lookup", "timeout", nil)
	if services.Fatal(provErr) {
		t.Fatal("expected provider error to degrade, not abort")
	}
}
