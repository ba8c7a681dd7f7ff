package wikierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := NoResults("anything")
	if KindOf(err) != KindNoResults {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindNoResults)
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("plain errors should map to the internal kind")
	}
	if KindOf(nil) != KindInternal {
		t.Error("nil should map to the internal kind")
	}
}

func TestKindOfWrapped(t *testing.T) {
	inner := Timeout(errors.New("deadline exceeded"))
	err := fmt.Errorf("while searching: %w", fmt.Errorf("layer: %w", inner))
	if KindOf(err) != KindTimeout {
		t.Errorf("KindOf(wrapped) = %v, want %v", KindOf(err), KindTimeout)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("request failed", cause)
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through errors.Is")
	}
}

func TestNoResultsCarriesQuery(t *testing.T) {
	err := NoResults("golang generics")
	if err.Query() != "golang generics" {
		t.Errorf("Query() = %q", err.Query())
	}
	if !IsNoResults(err) {
		t.Error("IsNoResults should report true")
	}
	if IsNoResults(errors.New("other")) {
		t.Error("IsNoResults should report false for foreign errors")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NoResults("x"), `Nothing found for "x".`},
		{InvalidLanguage("zz"), `Language "zz" is not supported.`},
		{Network("boom", nil), "Connection problems. Please try again later."},
	}
	for _, tt := range tests {
		if got := tt.err.UserMessage(); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err.Kind(), got, tt.want)
		}
	}
}

func TestErrorString(t *testing.T) {
	err := Parse("bad payload", errors.New("unexpected EOF"))
	got := err.Error()
	if got == "" {
		t.Fatal("empty error string")
	}
	if IsNetwork(err) {
		t.Error("parse error misreported as network")
	}
}
