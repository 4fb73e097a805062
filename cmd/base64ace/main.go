package main

import (
	"fmt"
	"github.com/bokysan/base64ace/internal/args"
	"github.com/bokysan/base64ace/internal/commands/codec"
	"github.com/bokysan/base64ace/internal/commands/version"
	scFlags "github.com/bokysan/base64ace/internal/flags"
	"github.com/bokysan/base64ace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base64Ace is the main executable
type Base64Ace struct {
	parser *flags.Parser
}

// NewBase64Ace will create a new instance of Base64Ace and initialize the parser
func NewBase64Ace() *Base64Ace {
	executablePath := path.Base(os.Args[0])

	b := &Base64Ace{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *Base64Ace) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (b *Base64Ace) setupVersion() {
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base64Ace) setupEncode() {
	_, err := b.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode each argument into one line of text. Without arguments, the whole input is encoded.",
		codec.NewEncodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base64Ace) setupDecode() {
	_, err := b.parser.AddCommand(
		"decode",
		"Decode text",
		"Decode each argument and print it on its own line. Without arguments, the whole input is decoded.",
		codec.NewDecodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, reads the configuration file and runs the selected command
func main() {
	b := NewBase64Ace()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return scFlags.NewYamlParser(b.parser).ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
