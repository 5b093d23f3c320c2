// Command walletwire validates and converts wallet API payloads from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"
	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/internal/config"
)

// Global flags.
var opts struct {
	ConfigFile string `long:"config" description:"Path to a YAML configuration file"`
}

var (
	cfg config.Config
	log = btclog.Disabled
)

// setup loads the configuration and installs the stderr logger. It runs
// after flag parsing, before any command.
func setup() error {
	c, err := config.LoadFromPath(opts.ConfigFile)
	if err != nil {
		return err
	}
	cfg = c

	backend := btclog.NewBackend(os.Stderr)
	log = backend.Logger("WWIR")
	log.SetLevel(cfg.Level())
	walletwire.UseLogger(log)
	return nil
}

// command describes one subcommand of the parser.
type command struct {
	name, short, long string
	data              interface{}
}

var commands = []command{
	{"text", "Validate a text value",
		"Decode a bare text value with a named codec and print its canonical form.", &textCommand{}},
	{"decode", "Validate a payload",
		"Decode a record payload and print its redacted JSON rendering.", &decodeCommand{}},
	{"convert", "Re-encode a payload",
		"Decode a record payload and encode it in another wire format.", &convertCommand{}},
	{"codecs", "List text codecs",
		"List the registered text codecs.", &codecsCommand{}},
}

var mnemonicCommands = []command{
	{"generate", "Generate a sentence",
		"Generate a fresh mnemonic sentence.", &generateCommand{}},
	{"check", "Check a sentence",
		"Validate a mnemonic sentence without printing it.", &checkCommand{}},
}

func addCommands(parent *flags.Command, cmds []command) error {
	for _, c := range cmds {
		if _, err := parent.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return fmt.Errorf("add command %s: %w", c.name, err)
		}
	}
	return nil
}

func newParser() (*flags.Parser, error) {
	parser := flags.NewParser(&opts, flags.Default)
	if err := addCommands(parser.Command, commands); err != nil {
		return nil, err
	}

	mn, err := parser.AddCommand("mnemonic", "Mnemonic tools",
		"Generate and check mnemonic sentences.", &struct{}{})
	if err != nil {
		return nil, fmt.Errorf("add command mnemonic: %w", err)
	}
	if err := addCommands(mn, mnemonicCommands); err != nil {
		return nil, err
	}
	return parser, nil
}

func main() {
	os.Exit(mainInt())
}

func mainInt() int {
	parser, err := newParser()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	_, err = parser.Parse()
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	return 0
}
