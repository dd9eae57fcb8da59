package yangvalidator

import (
	"testing"
)

func TestYANGVersion_String(t *testing.T) {
	tests := []struct {
		version YANGVersion
		want    string
	}{
		{YANG10, "1"},
		{YANG11, "1.1"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.want {
			t.Errorf("%v.String() = %q; want %q", tt.version, got, tt.want)
		}
	}
}

func TestYANGVersion_IsValid(t *testing.T) {
	tests := []struct {
		version YANGVersion
		want    bool
	}{
		{YANG10, true},
		{YANG11, true},
		{"2", false},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.want)
		}
	}
}
