// Package genkey implements the genkey command.
package genkey

import (
	"crypto/rand"

	"github.com/cloudflare/edkey/cli"
	"github.com/cloudflare/edkey/helpers"
	"github.com/cloudflare/edkey/key"
	"github.com/cloudflare/edkey/log"
)

var genkeyUsageText = `edkey genkey -- generate a new Ed25519 signing key

Usage of genkey:
	edkey genkey [-out key.pem] [-pub pub.pem]

Flags:
`

var genkeyFlags = []string{"out", "pub"}

func genkeyMain(args []string, c cli.Config) error {
	if len(args) > 0 {
		return cli.ErrTrailingArguments
	}

	sk, err := key.GenerateSigningKey(rand.Reader)
	if err != nil {
		return err
	}
	defer sk.Zeroize()

	keyPEM, err := helpers.EncodeSigningKeyPEM(sk)
	if err != nil {
		return err
	}
	if err := cli.WriteOutput(c.OutFile, keyPEM, true); err != nil {
		return err
	}

	if c.PubFile != "" {
		pubPEM, err := helpers.EncodeVerificationKeyPEM(sk.Public())
		if err != nil {
			return err
		}
		if err := cli.WriteOutput(c.PubFile, pubPEM, false); err != nil {
			return err
		}
	}

	log.Infof("generated signing key %s", helpers.Fingerprint(sk.Public()))
	return nil
}

// Command assembles the definition of Command 'genkey'
var Command = &cli.Command{UsageText: genkeyUsageText, Flags: genkeyFlags, Main: genkeyMain}
