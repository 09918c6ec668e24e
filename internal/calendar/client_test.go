package calendar

import (
	"testing"
	"time"
)

func TestHasToken(t *testing.T) {
	// Test that HasToken returns a boolean without error
	result := HasToken()
	_ = result
}

func TestDefaultListWindow(t *testing.T) {
	if DefaultListWindow != 30*24*time.Hour {
		t.Errorf("DefaultListWindow = %v, want 30 days", DefaultListWindow)
	}
}
