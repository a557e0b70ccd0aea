// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/cloudflare/edkey/cli"
)

var version = "dev"

// Usage text for 'edkey version'
var versionUsageText = `edkey version -- print out the version of edkey

Usage of version:
	edkey version
`

// FormatVersion returns the formatted version string.
func FormatVersion() string {
	return fmt.Sprintf("Module: github.com/cloudflare/edkey\nVersion: %s\nRuntime: %s\n",
		version, runtime.Version())
}

// The main functionality of 'edkey version' is to print out the version info.
func versionMain(args []string, c cli.Config) error {
	fmt.Printf("%s", FormatVersion())
	return nil
}

// Command assembles the definition of Command 'version'
var Command = &cli.Command{UsageText: versionUsageText, Flags: nil, Main: versionMain}
