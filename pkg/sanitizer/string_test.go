package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"already clean", "Oceanview", "Oceanview"},
		{"leading and trailing", "  Mountain Inn  ", "Mountain Inn"},
		{"interior runs collapsed", "Goa   Grand\t\tResort", "Goa Grand Resort"},
		{"mixed whitespace kinds", "Sea\n Breeze", "Sea Breeze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Goa", "goa"},
		{"trims and lowercases", "  Mountain Inn ", "mountain inn"},
		{"collapses before lowering", "Goa   GRAND", "goa grand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexKey(tt.input); got != tt.want {
				t.Errorf("IndexKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeName_PreservesCase(t *testing.T) {
	if got := SanitizeName("  Hotel  Oceanview "); got != "Hotel Oceanview" {
		t.Errorf("SanitizeName = %q, want %q", got, "Hotel Oceanview")
	}
}
