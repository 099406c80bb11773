package strictdate

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-10", false},
		{" 2024-01-10 ", false},
		{"2024-1-10", true},
		{"2024-01-32", true},
		{"10/01/2024", true},
		{"Unknown", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	d, err := Parse("2023-06-01")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Format(d); got != "2023-06-01" {
		t.Errorf("Format() = %q; want %q", got, "2023-06-01")
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  string
		ref  string
		want int
	}{
		{"birthday passed", "2000-01-01", "2024-01-02", 24},
		{"birthday today", "2000-01-01", "2024-01-01", 24},
		{"birthday pending", "2000-06-15", "2024-01-02", 23},
		{"same month earlier day", "2000-06-15", "2024-06-14", 23},
		{"same month later day", "2000-06-15", "2024-06-16", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob := mustParse(t, tt.dob)
			ref := mustParse(t, tt.ref)
			if got := Age(dob, ref); got != tt.want {
				t.Errorf("Age(%s, %s) = %d; want %d", tt.dob, tt.ref, got, tt.want)
			}
		})
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return d
}
