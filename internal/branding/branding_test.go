package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "skeleton" {
		t.Errorf("CLIName() = %q, want %q", got, "skeleton")
	}
	if got := HomeDir(); got != ".skeleton" {
		t.Errorf("HomeDir() = %q, want %q", got, ".skeleton")
	}
	if DisplayName() == "" {
		t.Error("DisplayName() should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"staging_dir", "SKELETON_STAGING_DIR"},
		{"LANGUAGE", "SKELETON_LANGUAGE"},
		{"defaults.php_version", "SKELETON_DEFAULTS_PHP_VERSION"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
