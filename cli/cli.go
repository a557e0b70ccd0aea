/*
Package cli provides the edkey command dispatch.

edkey is the command line tool to generate Ed25519 signing keys, derive
their public keys, and sign and verify messages.

	Usage:
		edkey command [-flags] arguments

	The commands are defined in the cli subpackages and include

		genkey   generate an Ed25519 signing key
		pubkey   derive the verification key from a signing key
		sign     sign a message with a signing key
		verify   verify a signature with a verification key
		version  print the edkey version

Use "edkey [command] -help" to find out more about a command.
*/
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cloudflare/edkey/log"
)

// Command holds the implementation details of an edkey command.
type Command struct {
	// The Usage Text
	UsageText string
	// Flags to look up in the global table
	Flags []string
	// Main runs the command, args are the arguments after flags
	Main func(args []string, c Config) error
}

// Config is a type to hold flag values used by edkey commands.
type Config struct {
	KeyFile   string
	PubFile   string
	OutFile   string
	Signature string
}

// ErrTrailingArguments is returned by commands that take no positional
// arguments when some are supplied anyway.
var ErrTrailingArguments = errors.New("unexpected trailing arguments --- please refer to the usage")

// Parsed command name
var cmdName string

// registerFlags defines all edkey command flags and associates their values
// with variables.
func registerFlags(c *Config, f *flag.FlagSet) {
	f.StringVar(&c.KeyFile, "key", "", "PEM file with the signing key")
	f.StringVar(&c.PubFile, "pub", "", "PEM file with the verification key")
	f.StringVar(&c.OutFile, "out", "", "output file (default stdout)")
	f.StringVar(&c.Signature, "sig", "", "hex signature to verify")
	f.IntVar(&log.Level, "loglevel", log.LevelInfo,
		"Log level (0 = DEBUG, 5 = FATAL)")
}

// usage is the edkey usage heading. It will be appended with names of
// defined commands in cmds to form the final usage message of edkey.
const usage = `Usage:
Available commands:
`

// printDefaultValue is a helper function to print out a user friendly usage
// message of a flag. It is useful since we want to write customized usage
// messages on selected subsets of the global flag set. It is borrowed from
// standard library source code. Since flag value type is not exported,
// default string flag values are printed without quotes. The only exception
// is the empty string, which is printed as "".
func printDefaultValue(f *flag.Flag) {
	format := "  -%s=%s: %s\n"
	if f.DefValue == "" {
		format = "  -%s=%q: %s\n"
	}
	fmt.Fprintf(os.Stderr, format, f.Name, f.DefValue, f.Usage)
}

// PopFirstArgument returns the first element and the rest of a string slice
// and returns an error if it fails to do so. It is a helper function to
// parse the non-flag arguments of edkey commands.
func PopFirstArgument(args []string) (string, []string, error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("not enough arguments are supplied --- please refer to the usage")
	}
	return args[0], args[1:], nil
}

// ReadStdin reads from stdin if the file is "-"
func ReadStdin(filename string) ([]byte, error) {
	if filename == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

// WriteOutput writes to the configured output file, or to stdout when no
// output file was set. Key material is written with owner-only permissions.
func WriteOutput(outFile string, data []byte, secret bool) error {
	if outFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	perm := os.FileMode(0644)
	if secret {
		perm = 0600
	}
	return os.WriteFile(outFile, data, perm)
}

// Start is the entrance point of the edkey command line tool.
func Start(cmds map[string]*Command) error {
	// edkeyFlagSet is the flag set for edkey.
	var edkeyFlagSet = flag.NewFlagSet("edkey", flag.ExitOnError)
	var c Config

	registerFlags(&c, edkeyFlagSet)
	// Initial parse of command line arguments. By convention, only -h/-help
	// is supported.
	if flag.Usage == nil {
		flag.Usage = func() {
			fmt.Fprintf(os.Stderr, usage)
			for name := range cmds {
				fmt.Fprintf(os.Stderr, "\t%s\n", name)
			}
		}
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "No command is given.\n")
		flag.Usage()
		return fmt.Errorf("no command was given")
	}

	// Clip out the command name and args for the command
	cmdName = flag.Arg(0)
	args := flag.Args()[1:]
	cmd, found := cmds[cmdName]
	if !found {
		fmt.Fprintf(os.Stderr, "Command %s is not defined.\n", cmdName)
		flag.Usage()
		return fmt.Errorf("unknown command")
	}
	// The usage of each individual command is re-written to mention flags
	// defined and referenced only in that command.
	edkeyFlagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s", cmd.UsageText)
		for _, name := range cmd.Flags {
			if f := edkeyFlagSet.Lookup(name); f != nil {
				printDefaultValue(f)
			}
		}
	}

	// Parse all flags and take the rest as argument lists for the command
	edkeyFlagSet.Parse(args)
	args = edkeyFlagSet.Args()

	if err := cmd.Main(args, c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	return nil
}
