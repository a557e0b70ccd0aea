package version

import (
	"strings"
	"testing"

	"github.com/cloudflare/edkey/cli"
)

func TestVersionMain(t *testing.T) {
	args := []string{"edkey", "version"}
	err := versionMain(args, cli.Config{})
	if err != nil {
		t.Fatal("version main failed")
	}
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	for _, want := range []string{"github.com/cloudflare/edkey", "Version:", "Runtime:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("version output %q is missing %q", out, want)
		}
	}
}
