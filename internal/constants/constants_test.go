package constants

import (
	"testing"
	"time"
)

func TestDefaultValues(t *testing.T) {
	if DefaultPort != "5000" {
		t.Errorf("Expected DefaultPort to be '5000', got '%s'", DefaultPort)
	}

	if DefaultDBPath != "tinnie.db" {
		t.Errorf("Expected DefaultDBPath to be 'tinnie.db', got '%s'", DefaultDBPath)
	}

	if DefaultSpotlightBundleID != "10341902" {
		t.Errorf("Expected DefaultSpotlightBundleID to be '10341902', got '%s'", DefaultSpotlightBundleID)
	}

	if DefaultDataSource != DataSourceSQLite {
		t.Errorf("Expected DefaultDataSource to be '%s', got '%s'", DataSourceSQLite, DefaultDataSource)
	}
}

func TestTimeouts(t *testing.T) {
	if DefaultReadTimeout != 10*time.Second {
		t.Errorf("Expected DefaultReadTimeout to be 10s, got %v", DefaultReadTimeout)
	}
	if DefaultWriteTimeout != 15*time.Second {
		t.Errorf("Expected DefaultWriteTimeout to be 15s, got %v", DefaultWriteTimeout)
	}
	if DefaultWriteTimeout <= DefaultReadTimeout {
		t.Error("Expected write timeout to exceed read timeout")
	}
}

func TestAudioExtensions(t *testing.T) {
	seen := make(map[string]bool)
	for _, ext := range AudioExtensions {
		if ext == "" || ext[0] != '.' {
			t.Errorf("Extension %q should start with a dot", ext)
		}
		if seen[ext] {
			t.Errorf("Duplicate extension %q", ext)
		}
		seen[ext] = true
	}
	if !seen[ExtMP3] || !seen[ExtFLAC] {
		t.Error("Expected mp3 and flac to be audio extensions")
	}
}

func TestFallbacks(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"slug", UntitledSlug, "untitled"},
		{"artist", UnknownArtist, "Unknown Artist"},
		{"release", UntitledRelease, "Untitled Release"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestFilePermissions(t *testing.T) {
	if DirPermissions != 0755 {
		t.Errorf("Expected DirPermissions to be 0755, got %o", DirPermissions)
	}
	if FilePermissions != 0644 {
		t.Errorf("Expected FilePermissions to be 0644, got %o", FilePermissions)
	}
}
