package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zoobzio/walletwire"
	"github.com/zoobzio/walletwire/api"
	"github.com/zoobzio/walletwire/bson"
	"github.com/zoobzio/walletwire/json"
	"github.com/zoobzio/walletwire/mnemonic"
	"github.com/zoobzio/walletwire/msgpack"
	"github.com/zoobzio/walletwire/yaml"
)

// codecFor maps a format name to its wire codec.
func codecFor(format string) (walletwire.Codec, error) {
	switch format {
	case "json":
		return json.New(), nil
	case "yaml":
		return yaml.New(), nil
	case "msgpack":
		return msgpack.New(), nil
	case "bson":
		return bson.New(), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func newRegistry() (*walletwire.Registry, error) {
	reg := walletwire.NewRegistry()
	if err := api.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func lookupRecord(name string) (api.Record, error) {
	rec, ok := api.LookupRecord(name)
	if !ok {
		var names []string
		for _, r := range api.Records() {
			names = append(names, r.Name)
		}
		return api.Record{}, fmt.Errorf("unknown record %q, expected one of: %s", name, strings.Join(names, ", "))
	}
	return rec, nil
}

type textCommand struct {
	Args struct {
		Codec string `positional-arg-name:"codec" description:"Codec name, see the codecs command"`
		Value string `positional-arg-name:"value" description:"Text to decode, or - to read a line from stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (c *textCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	value := c.Args.Value
	if value == "-" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		value = strings.TrimRight(line, "\r\n")
	}

	v, err := reg.Decode(c.Args.Codec, value)
	if err != nil {
		log.Debugf("Rejected %s value", c.Args.Codec)
		return err
	}
	if reg.Sensitive(c.Args.Codec) {
		fmt.Println(walletwire.RedactedValue)
		return nil
	}
	text, err := reg.Encode(c.Args.Codec, v)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

type decodeCommand struct {
	Record string `long:"record" required:"yes" description:"Record name, e.g. wallet-post"`
	Format string `long:"format" description:"Input format (json, yaml, msgpack, bson); defaults to the configured format"`
	Args   struct {
		File string `positional-arg-name:"file" description:"Input file, stdin when omitted"`
	} `positional-args:"yes"`
}

func (c *decodeCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	rec, err := lookupRecord(c.Record)
	if err != nil {
		return err
	}
	in, err := codecFor(orDefault(c.Format, cfg.Format))
	if err != nil {
		return err
	}
	data, err := readInput(c.Args.File)
	if err != nil {
		return err
	}

	ctx := context.Background()
	d, err := rec.Decode(ctx, in, data)
	if err != nil {
		return err
	}
	out, err := d.Redact(ctx, json.New())
	if err != nil {
		return err
	}
	log.Infof("Accepted %s payload %s", rec.Name, walletwire.Fingerprint(data))
	fmt.Println(string(out))
	return nil
}

type convertCommand struct {
	Record string `long:"record" required:"yes" description:"Record name, e.g. wallet"`
	From   string `long:"from" description:"Input format; defaults to the configured format"`
	To     string `long:"to" required:"yes" description:"Output format"`
	Args   struct {
		File string `positional-arg-name:"file" description:"Input file, stdin when omitted"`
	} `positional-args:"yes"`
}

func (c *convertCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	rec, err := lookupRecord(c.Record)
	if err != nil {
		return err
	}
	from, err := codecFor(orDefault(c.From, cfg.Format))
	if err != nil {
		return err
	}
	to, err := codecFor(c.To)
	if err != nil {
		return err
	}
	data, err := readInput(c.Args.File)
	if err != nil {
		return err
	}

	ctx := context.Background()
	d, err := rec.Decode(ctx, from, data)
	if err != nil {
		return err
	}
	out, err := d.Send(ctx, to)
	if err != nil {
		return err
	}
	log.Debugf("Converted %s payload %s from %s to %s", rec.Name,
		walletwire.Fingerprint(data), from.ContentType(), to.ContentType())
	_, err = os.Stdout.Write(out)
	return err
}

type codecsCommand struct{}

func (c *codecsCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		if reg.Sensitive(name) {
			fmt.Printf("%s (sensitive)\n", name)
			continue
		}
		fmt.Println(name)
	}
	return nil
}

type generateCommand struct {
	Purpose string `long:"purpose" default:"seed" choice:"seed" choice:"second-factor" description:"Sentence purpose"`
	Words   int    `long:"words" description:"Word count; defaults to the largest accepted size"`
}

func (c *generateCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	p, err := mnemonic.ParsePurpose(c.Purpose)
	if err != nil {
		return err
	}
	n := c.Words
	if n == 0 {
		sizes := mnemonic.AcceptedSizes(p)
		n = sizes[len(sizes)-1]
	}
	m, err := mnemonic.Generate(p, n)
	if err != nil {
		return err
	}
	log.Debugf("Generated %v", m)
	fmt.Println(m.Text())
	return nil
}

type checkCommand struct {
	Purpose string `long:"purpose" default:"seed" choice:"seed" choice:"second-factor" description:"Sentence purpose"`
	Args    struct {
		Words []string `positional-arg-name:"word" required:"1" description:"Sentence words, or - to read them from stdin"`
	} `positional-args:"yes"`
}

func (c *checkCommand) Execute(_ []string) error {
	if err := setup(); err != nil {
		return err
	}
	p, err := mnemonic.ParsePurpose(c.Purpose)
	if err != nil {
		return err
	}

	text := strings.Join(c.Args.Words, " ")
	if text == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	m, err := api.MnemonicText(p).Decode(text)
	if err != nil {
		return err
	}
	fmt.Printf("valid %v\n", m)
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
