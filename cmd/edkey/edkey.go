/*
edkey is the command line tool to generate Ed25519 signing keys, derive
their verification keys, and sign and verify messages.

Usage:

	edkey command [-flags] arguments

	The commands are

	genkey   generate an Ed25519 signing key
	pubkey   derive the verification key from a signing key
	sign     sign a message with a signing key
	verify   verify a signature with a verification key
	version  print the edkey version

Use "edkey [command] -help" to find out more about a command.
*/
package main

import (
	"os"

	"github.com/cloudflare/edkey/cli"
	"github.com/cloudflare/edkey/cli/genkey"
	"github.com/cloudflare/edkey/cli/pubkey"
	"github.com/cloudflare/edkey/cli/sign"
	"github.com/cloudflare/edkey/cli/verify"
	"github.com/cloudflare/edkey/cli/version"
)

// main defines the edkey usage and registers all defined commands and flags.
func main() {
	// Register commands.
	cmds := map[string]*cli.Command{
		"genkey":  genkey.Command,
		"pubkey":  pubkey.Command,
		"sign":    sign.Command,
		"verify":  verify.Command,
		"version": version.Command,
	}

	// If the command is not found, or the command errored, exit nonzero.
	if err := cli.Start(cmds); err != nil {
		os.Exit(1)
	}
}
