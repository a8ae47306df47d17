package render

import "testing"

func TestCapabilities_Placeholder(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		n        int
		expected string
	}{
		{"question", Capabilities{Positional: Question}, 3, "?"},
		{"dollar", Capabilities{Positional: Dollar}, 1, "$1"},
		{"dollar double digit", Capabilities{Positional: Dollar}, 12, "$12"},
		{"at p", Capabilities{Positional: AtP}, 2, "@p2"},
		{"zero value", Capabilities{}, 1, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.Placeholder(tt.n); got != tt.expected {
				t.Errorf("Placeholder(%d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}
}

func TestCapabilities_NamedPlaceholder(t *testing.T) {
	tests := []struct {
		name      string
		caps      Capabilities
		expected  string
		supported bool
	}{
		{"colon", Capabilities{Named: Colon}, ":user_id", true},
		{"at", Capabilities{Named: At}, "@user_id", true},
		{"none", Capabilities{Named: None}, "", false},
		{"positional style is not named", Capabilities{Named: Dollar}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.NamedPlaceholder("user_id"); got != tt.expected {
				t.Errorf("NamedPlaceholder() = %q, want %q", got, tt.expected)
			}
			if got := tt.caps.SupportsNamed(); got != tt.supported {
				t.Errorf("SupportsNamed() = %v, want %v", got, tt.supported)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if Default.Placeholder(1) != "?" {
		t.Errorf("Default.Placeholder(1) = %q, want %q", Default.Placeholder(1), "?")
	}
	if Default.SupportsNamed() {
		t.Error("Default should not support named placeholders")
	}
}
