package scales

import (
	"melodycipher/internal/cipher"
	"melodycipher/internal/logging"
	"melodycipher/internal/render"

	"github.com/k0kubun/go-ansi"
)

const (
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the registered scales, including the ones loaded from the
// configuration file.
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "List the available scales"
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	for _, name := range cipher.Names() {
		cfg, _ := cipher.FindConfig(name)
		kind := cfg.Codec
		if kind == "" {
			kind = cipher.KindLetters
		}
		ansi.Printf(White+"%-34v"+DarkGray+" base-%-2d %-7v "+Reset+"%v\n",
			name, cfg.Base(), kind, render.Notes(cfg, cfg.Notes))
	}
	return nil
}
