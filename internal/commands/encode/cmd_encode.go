package encode

import (
	"os"
	"strings"

	"melodycipher/internal/armor"
	"melodycipher/internal/cipher"
	"melodycipher/internal/logging"
	"melodycipher/internal/render"
	"melodycipher/internal/util"

	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes plain text into a note sequence.
type Command struct {
	Scale string  `short:"s" long:"scale" env:"MELODY_SCALE" required:"true" description:"Name of the scale to encode with, e.g. 'duochroma' or 'bebop_mixolydian'."`
	Text  *string `short:"t" long:"text"                                     description:"Text to encode. If not set, the input is read from --file or stdin."`
	File  *string `short:"F" long:"file"                                     description:"Read the text to encode from a file."`
	Armor bool    `short:"a" long:"armor"                                    description:"Wrap the encoded melody into a base91 armor for compact sharing."`
	Color string  `          long:"color" choice:"yes" choice:"no" choice:"auto" default:"auto" description:"Colorize the notes using the scale's color table."`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Encode text into notes"
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	codec, err := cipher.Find(s.Scale)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := util.ReadInput(s.Text, s.File)
	if err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Encoding %d characters with scale %q", len(input), codec.Name())
	tokens := codec.Encode(input)

	if s.Armor {
		ansi.Println(armor.Encode(render.Plain(tokens)))
		return nil
	}

	if s.colored() {
		ansi.Println(render.Notes(codec.Config(), tokens))
	} else {
		ansi.Println(render.Plain(tokens))
	}
	return nil
}

// colored decides whether the note output gets ANSI colors. The "auto"
// choice follows the NO_COLOR convention.
func (s *Command) colored() bool {
	switch strings.TrimSpace(strings.ToLower(s.Color)) {
	case "yes":
		return true
	case "no":
		return false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		return !noColor
	}
}
