package decode

import (
	"melodycipher/internal/armor"
	"melodycipher/internal/cipher"
	"melodycipher/internal/logging"
	"melodycipher/internal/util"

	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command turns a note sequence back into text. Decoding never fails --
// notes that cannot be decoded show up as '?' in the output.
type Command struct {
	Scale string  `short:"s" long:"scale" env:"MELODY_SCALE" required:"true" description:"Name of the scale the input was encoded with."`
	Text  *string `short:"t" long:"text"                                     description:"Note sequence to decode. If not set, the input is read from --file or stdin."`
	File  *string `short:"F" long:"file"                                     description:"Read the note sequence from a file."`
	Armor bool    `short:"a" long:"armor"                                    description:"The input is base91-armored; unwrap it first."`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Decode notes into text"
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

	if s.Armor {
		if input, err = armor.Decode(input); err != nil {
			return errors.Wrap(err, "Could not unwrap the armored input")
		}
	}

	log.Debugf("Decoding with scale %q", codec.Name())
	ansi.Println(codec.Decode(input))
	return nil
}
