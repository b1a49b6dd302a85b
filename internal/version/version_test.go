package version

import (
	"strings"
	"testing"
)

func TestVersionContainsSemverParts(t *testing.T) {
	for _, part := range []string{"0", ".", "1", "-dev"} {
		if !strings.Contains(Version, part) {
			t.Fatalf("Version %q missing %q", Version, part)
		}
	}
}

func TestBuildMetadataDefaults(t *testing.T) {
	// перезаписываются через -ldflags; по умолчанию пустые
	if GitCommit != "" || GitMessage != "" || BuildDate != "" {
		t.Fatalf("unexpected defaults: %q %q %q", GitCommit, GitMessage, BuildDate)
	}
}
