package version

import (
	"strings"
	"testing"
)

func TestShortContainsVersionAndRevision(t *testing.T) {
	s := Short()
	if !strings.Contains(s, Version) {
		t.Errorf("Short() = %q, missing version %q", s, Version)
	}
	if !strings.Contains(s, Revision) {
		t.Errorf("Short() = %q, missing revision %q", s, Revision)
	}
}

func TestDetailedContainsRuntime(t *testing.T) {
	s := Detailed()
	if !strings.Contains(s, "go1") {
		t.Errorf("Detailed() = %q, missing go runtime version", s)
	}
}
