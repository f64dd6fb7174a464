package main

import (
	"fmt"
	"os"
	"path"

	"melodycipher/internal/args"
	"melodycipher/internal/cipher"
	"melodycipher/internal/commands/decode"
	"melodycipher/internal/commands/encode"
	"melodycipher/internal/commands/scales"
	"melodycipher/internal/commands/version"
	"melodycipher/internal/util"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// MelodyCipher is the main executable
type MelodyCipher struct {
	parser *flags.Parser
}

// NewMelodyCipher will create a new instance of MelodyCipher and initialize the parser
func NewMelodyCipher() *MelodyCipher {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	mc := &MelodyCipher{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	mc.setupGeneral()
	mc.setupVersion()
	mc.setupEncode()
	mc.setupDecode()
	mc.setupScales()

	return mc
}

// setupGeneral will configure general options
func (mc *MelodyCipher) setupGeneral() {
	if _, err := mc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (mc *MelodyCipher) setupVersion() {
	cmd := &version.Command{}
	_, err := mc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (mc *MelodyCipher) setupEncode() {
	cmd := encode.NewCommand()
	_, err := mc.parser.AddCommand(
		"encode",
		"Encode text into notes",
		"Encode plain text into a sequence of musical notes using the selected scale",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (mc *MelodyCipher) setupDecode() {
	cmd := decode.NewCommand()
	_, err := mc.parser.AddCommand(
		"decode",
		"Decode notes into text",
		"Decode a sequence of musical notes back into text using the selected scale",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupScales adds the `scales` command
func (mc *MelodyCipher) setupScales() {
	cmd := scales.NewCommand()
	_, err := mc.parser.AddCommand(
		"scales",
		"List the scales",
		"List the built-in scales and any scales loaded from the configuration file",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts melodycipher and reads the configuration file
func main() {

	melodyCipher := NewMelodyCipher()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		args.General.ConfigurationFilePath = file
		return cipher.LoadFile(file)
	}

	_, err := melodyCipher.parser.Parse()
	util.MustErrorNilOrExit(err)

}
