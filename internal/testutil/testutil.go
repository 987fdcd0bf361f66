package testutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// AssertEqual checks if two values are equal
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

// AssertNil checks if error is nil
func AssertNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError checks if error is not nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}

// AssertErrorIs checks that err matches target with errors.Is
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got error %v, want it to match %v", err, target)
	}
}

// AssertContains checks if string contains substring
func AssertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("got %q, want it to contain %q", got, want)
	}
}

// AssertNotContains checks if string does not contain substring
func AssertNotContains(t *testing.T, got, notWant string) {
	t.Helper()
	if strings.Contains(got, notWant) {
		t.Errorf("got %q, want it to not contain %q", got, notWant)
	}
}

// AssertTimeEqual checks if two times are equal within tolerance
func AssertTimeEqual(t *testing.T, got, want time.Time, tolerance time.Duration) {
	t.Helper()
	diff := got.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("got %s, want %s (off by %v, tolerance %v)", got.Format(time.RFC3339), want.Format(time.RFC3339), diff, tolerance)
	}
}

// AssertTrue checks if condition is true
func AssertTrue(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Error("expected true but got false")
	}
}

// AssertFalse checks if condition is false
func AssertFalse(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Error("expected false but got true")
	}
}

// AssertLen checks if slice has expected length
func AssertLen[T any](t *testing.T, items []T, want int) {
	t.Helper()
	got := len(items)
	if got != want {
		t.Errorf("got length %d, want %d", got, want)
	}
}

// AssertNilPtr checks that an optional field is absent
func AssertNilPtr[T any](t *testing.T, p *T) {
	t.Helper()
	if p != nil {
		t.Errorf("got %v, want nil", *p)
	}
}

// AssertPtrEqual checks that an optional field is present and equal to want
func AssertPtrEqual[T comparable](t *testing.T, got *T, want T) {
	t.Helper()
	if got == nil {
		t.Errorf("got nil, want %v", want)
		return
	}
	if *got != want {
		t.Errorf("got %v, want %v", *got, want)
	}
}
