package format

import "testing"

func TestToDuration(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"zero", 0, "0h00"},
		{"target day", 8.5, "8h30"},
		{"three quarters", 6.75, "6h45"},
		{"quarter hour", 0.25, "0h15"},
		{"whole hours", 42.5, "42h30"},
		{"negative uses magnitude", -1.75, "1h45"},
		{"rounds to nearest minute", 8.333, "8h20"},
		{"sixty minutes not renormalized", 7.9999, "7h60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToDuration(tt.hours)
			if result != tt.expected {
				t.Errorf("ToDuration(%f) = %q, want %q", tt.hours, result, tt.expected)
			}
		})
	}
}

func TestToSignedDuration(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"zero is positive", 0, "+0h00"},
		{"surplus", 0.75, "+0h45"},
		{"target day", 8.5, "+8h30"},
		{"shortfall", -1.75, "-1h45"},
		{"small shortfall", -0.25, "-0h15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToSignedDuration(tt.hours)
			if result != tt.expected {
				t.Errorf("ToSignedDuration(%f) = %q, want %q", tt.hours, result, tt.expected)
			}
		})
	}
}

func TestSignedMatchesUnsignedMagnitude(t *testing.T) {
	for _, v := range []float64{0, 0.5, 8.5, -8.5, -0.001, 12.25} {
		signed := ToSignedDuration(v)
		if got := signed[1:]; got != ToDuration(v) {
			t.Errorf("ToSignedDuration(%f) magnitude = %q, want %q", v, got, ToDuration(v))
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{0, "plus"},
		{1.5, "plus"},
		{-0.001, "minus"},
		{-8.5, "minus"},
	}

	for _, tt := range tests {
		result := Sign(tt.hours)
		if result != tt.expected {
			t.Errorf("Sign(%f) = %q, want %q", tt.hours, result, tt.expected)
		}
	}
}
