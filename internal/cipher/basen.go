package cipher

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ByteCodec encodes every character as a two-digit number in base B, where
// B is the alphabet length: notes[code/B] followed by notes[code%B]. Unlike
// the letter codec it has no sentinel tokens -- a space is just another
// character code and a newline in the input becomes a line break in the
// encoded text.
type ByteCodec struct {
	cfg *Config
}

func NewByteCodec(cfg *Config) (*ByteCodec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &ByteCodec{cfg: cfg}, nil
}

func (c *ByteCodec) Name() string {
	return c.cfg.Name
}

func (c *ByteCodec) String() string {
	return fmt.Sprintf("%v(%v)", c.Name(), KindBytes)
}

func (c *ByteCodec) Config() *Config {
	return c.cfg
}

func (c *ByteCodec) Encode(text string) []string {
	notes := c.cfg.Notes
	base := c.cfg.Base()
	limit := base * base
	out := make([]string, 0, len(text)*2)

	for _, r := range text {
		if r == '\n' {
			out = append(out, BreakToken)
			continue
		}
		code := int(r)
		if code >= limit {
			// Two base-B digits cannot express this character. Encoding
			// never fails, so the placeholder goes through instead.
			log.Debugf("Character %q (code %d) does not fit two base-%d digits", r, code, base)
			code = int(Placeholder)
			if code >= limit {
				// not even the placeholder fits this alphabet
				continue
			}
		}
		out = append(out, notes[code/base], notes[code%base])
	}

	return out
}

func (c *ByteCodec) Decode(encoded string) string {
	d := pairDecoder{
		cfg:  c.cfg,
		base: c.cfg.Base(),
		unit: func(val int) (rune, bool) {
			return rune(val), true
		},
	}
	return d.decode(strings.TrimSpace(encoded))
}
