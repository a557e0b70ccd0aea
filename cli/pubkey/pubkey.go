// Package pubkey implements the pubkey command, which derives the
// verification key from a stored signing key.
package pubkey

import (
	"errors"

	"github.com/cloudflare/edkey/cli"
	"github.com/cloudflare/edkey/helpers"
	"github.com/cloudflare/edkey/log"
)

var pubkeyUsageText = `edkey pubkey -- derive the verification key from a signing key

Usage of pubkey:
	edkey pubkey -key key.pem [-out pub.pem]

Flags:
`

var pubkeyFlags = []string{"key", "out"}

func pubkeyMain(args []string, c cli.Config) error {
	if len(args) > 0 {
		return cli.ErrTrailingArguments
	}
	if c.KeyFile == "" {
		return errors.New("pubkey requires -key")
	}

	in, err := cli.ReadStdin(c.KeyFile)
	if err != nil {
		return err
	}
	sk, err := helpers.ParseSigningKeyPEM(in)
	if err != nil {
		return err
	}
	defer sk.Zeroize()

	pubPEM, err := helpers.EncodeVerificationKeyPEM(sk.Public())
	if err != nil {
		return err
	}
	if err := cli.WriteOutput(c.OutFile, pubPEM, false); err != nil {
		return err
	}

	log.Debugf("derived verification key from %s", c.KeyFile)
	return nil
}

// Command assembles the definition of Command 'pubkey'
var Command = &cli.Command{UsageText: pubkeyUsageText, Flags: pubkeyFlags, Main: pubkeyMain}
