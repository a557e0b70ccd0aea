// Package sign implements the sign command.
package sign

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cloudflare/edkey/cli"
	"github.com/cloudflare/edkey/helpers"
	"github.com/cloudflare/edkey/log"
)

var signUsageText = `edkey sign -- sign a message with an Ed25519 signing key

Usage of sign:
	edkey sign -key key.pem MESSAGE_FILE
	edkey sign -key key.pem -

The message is read from MESSAGE_FILE, or from stdin when the argument
is "-". The 64-byte signature is printed as hex.

Flags:
`

var signFlags = []string{"key", "out"}

func signMain(args []string, c cli.Config) error {
	if c.KeyFile == "" {
		return errors.New("sign requires -key")
	}

	messageFile, args, err := cli.PopFirstArgument(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return cli.ErrTrailingArguments
	}

	message, err := cli.ReadStdin(messageFile)
	if err != nil {
		return err
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

	sig := sk.Sign(message)
	log.Debugf("signed %d bytes with key %s", len(message), helpers.Fingerprint(sk.Public()))

	out := fmt.Sprintf("%s\n", hex.EncodeToString(sig.Bytes()))
	return cli.WriteOutput(c.OutFile, []byte(out), false)
}

// Command assembles the definition of Command 'sign'
var Command = &cli.Command{UsageText: signUsageText, Flags: signFlags, Main: signMain}
