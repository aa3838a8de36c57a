package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	err := &OpError{
		Op:   "money.new",
		Kind: KindInvalidCurrency,
		Err:  ErrInvalidCurrency,
	}

	if !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidCurrency {
		t.Fatalf("expected kind %s", KindInvalidCurrency)
	}
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "config.load",
		Kind: KindInvalidConfig,
		Path: "domainmodel.yaml",
		Err:  errors.New("boom"),
	}

	msg := err.Error()
	for _, want := range []string{"config.load", "invalid_config", "path=domainmodel.yaml", "boom"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "family.new", Kind: KindInvalidFamily}

	if !IsKind(err, KindInvalidFamily) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindInvalidCurrency) {
		t.Fatalf("expected IsKind mismatch")
	}
	if IsKind(errors.New("plain"), KindInvalidFamily) {
		t.Fatalf("expected plain error not to match")
	}
}
