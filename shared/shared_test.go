package shared_test

import (
	"testing"

	"demobook/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "limiter",
			parts:    nil,
			expected: "limiter",
		},
		{
			name:     "single part",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1"},
			expected: "limiter:10.0.0.1",
		},
		{
			name:     "multiple parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl/8.0"},
			expected: "limiter:10.0.0.1:curl/8.0",
		},
		{
			name:     "empty part is kept",
			prefix:   "limiter",
			parts:    []string{""},
			expected: "limiter:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
