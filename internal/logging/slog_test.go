package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "test_operation")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithIntent(t *testing.T) {
	logger := slog.Default()
	result := WithIntent(logger, "book")
	if result == nil {
		t.Error("WithIntent returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("test_op")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "test_op" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "test_op")
	}
}

func TestIntentAttr(t *testing.T) {
	attr := Intent("check")
	if attr.Key != KeyIntent {
		t.Errorf("Intent key = %q, want %q", attr.Key, KeyIntent)
	}
	if attr.Value.String() != "check" {
		t.Errorf("Intent value = %q, want %q", attr.Value.String(), "check")
	}
}

func TestCalendarAttr(t *testing.T) {
	attr := Calendar("primary")
	if attr.Key != KeyCalendar {
		t.Errorf("Calendar key = %q, want %q", attr.Key, KeyCalendar)
	}
	if attr.Value.String() != "primary" {
		t.Errorf("Calendar value = %q, want %q", attr.Value.String(), "primary")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestDurationAttr(t *testing.T) {
	attr := Duration(1500 * time.Millisecond)
	if attr.Key != KeyDuration {
		t.Errorf("Duration key = %q, want %q", attr.Key, KeyDuration)
	}
	if attr.Value.String() != "1.5s" {
		t.Errorf("Duration value = %q, want %q", attr.Value.String(), "1.5s")
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}
