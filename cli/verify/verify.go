// Package verify implements the verify command.
package verify

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cloudflare/edkey/cli"
	"github.com/cloudflare/edkey/helpers"
	"github.com/cloudflare/edkey/key"
	"github.com/cloudflare/edkey/log"
)

var verifyUsageText = `edkey verify -- verify an Ed25519 signature

Usage of verify:
	edkey verify -pub pub.pem -sig HEX_SIGNATURE MESSAGE_FILE

The message is read from MESSAGE_FILE, or from stdin when the argument
is "-".

Flags:
`

var verifyFlags = []string{"pub", "sig"}

func verifyMain(args []string, c cli.Config) error {
	if c.PubFile == "" {
		return errors.New("verify requires -pub")
	}
	if c.Signature == "" {
		return errors.New("verify requires -sig")
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

	in, err := cli.ReadStdin(c.PubFile)
	if err != nil {
		return err
	}
	vk, err := helpers.ParseVerificationKeyPEM(in)
	if err != nil {
		return err
	}

	sigBytes, err := hex.DecodeString(c.Signature)
	if err != nil {
		return fmt.Errorf("signature is not valid hex: %v", err)
	}
	sig, err := key.NewSignature(sigBytes)
	if err != nil {
		return err
	}

	if !vk.Verify(message, sig) {
		return fmt.Errorf("signature is not valid for key %s", helpers.Fingerprint(vk))
	}

	log.Infof("signature verified with key %s", helpers.Fingerprint(vk))
	fmt.Println("signature verified")
	return nil
}

// Command assembles the definition of Command 'verify'
var Command = &cli.Command{UsageText: verifyUsageText, Flags: verifyFlags, Main: verifyMain}
