package commerce

import (
	"errors"
	"testing"
)

func TestApplyActivation(t *testing.T) {
	t.Run("first write", func(t *testing.T) {
		got, err := ApplyActivation("", "user-1")
		if err != nil {
			t.Fatalf("ApplyActivation(\"\", user-1) err = %v", err)
		}
		if got != "user-1" {
			t.Errorf("got %q, want user-1", got)
		}
	})

	t.Run("first writer wins", func(t *testing.T) {
		got, err := ApplyActivation("user-1", "user-2")
		if err != nil {
			t.Fatalf("repeat activation err = %v", err)
		}
		if got != "user-1" {
			t.Errorf("got %q, want original user-1", got)
		}
	})

	t.Run("repeat by same activator", func(t *testing.T) {
		got, err := ApplyActivation("user-1", "user-1")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got != "user-1" {
			t.Errorf("got %q, want user-1", got)
		}
	})

	t.Run("whitespace current counts as empty", func(t *testing.T) {
		got, err := ApplyActivation("   ", "user-3")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got != "user-3" {
			t.Errorf("got %q, want user-3", got)
		}
	})

	t.Run("empty first activation rejected", func(t *testing.T) {
		if _, err := ApplyActivation("", ""); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
		if _, err := ApplyActivation("", "  "); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("whitespace-only activator: err = %v, want ErrInvalidArgument", err)
		}
	})
}
