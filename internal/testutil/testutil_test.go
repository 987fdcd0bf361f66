package testutil

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, true, true)
}

func TestAssertNil(t *testing.T) {
	AssertNil(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("test error"))
}

func TestAssertErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "Porto - Campanhã", "Campanhã")
}

func TestAssertNotContains(t *testing.T) {
	AssertNotContains(t, "hello world", "foo")
}

func TestAssertTimeEqual(t *testing.T) {
	now := time.Now()
	AssertTimeEqual(t, now, now.Add(100*time.Millisecond), 200*time.Millisecond)
}

func TestAssertTrueFalse(t *testing.T) {
	AssertTrue(t, 2 > 1)
	AssertFalse(t, 1 == 2)
}

func TestAssertLen(t *testing.T) {
	AssertLen(t, []int{1, 2, 3}, 3)
	AssertLen(t, []int{}, 0)
}

func TestAssertPtr(t *testing.T) {
	var absent *int
	AssertNilPtr(t, absent)

	n := 94
	AssertPtrEqual(t, &n, 94)
}
