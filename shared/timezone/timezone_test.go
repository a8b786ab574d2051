package timezone_test

import (
	"testing"
	"time"

	"demobook/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("expected converted time to represent the same instant")
	}

	if appTime.Location() == nil {
		t.Error("expected converted time to have a location")
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, time.RFC3339)

	if formatted == "" {
		t.Error("Format() returned empty string")
	}
}
