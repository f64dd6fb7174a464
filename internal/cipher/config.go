package cipher

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config is a scale definition: an ordered alphabet of distinct note names
// plus an optional per-note color table used only for display. The position
// of a note within Notes is its numeric value.
type Config struct {
	Name   string            `yaml:"name"   json:"name"`
	Codec  string            `yaml:"codec"  json:"codec"`
	Notes  []string          `yaml:"notes"  json:"notes"`
	Colors map[string]string `yaml:"colors" json:"colors"`
}

// Base returns the numeric base defined by the alphabet length.
func (c *Config) Base() int {
	return len(c.Notes)
}

// Index returns the numeric value of the given note, or -1 if the note is
// not part of the alphabet. Alphabets are a dozen entries at most, so a
// linear scan is fine.
func (c *Config) Index(note string) int {
	for i, n := range c.Notes {
		if n == note {
			return i
		}
	}
	return -1
}

// Validate checks the scale definition and reports every problem found,
// not just the first one.
func (c *Config) Validate() error {
	var errs error

	if c.Name == "" {
		errs = multierror.Append(errs, errors.New("scale has no name"))
	}

	switch c.Codec {
	case "", KindLetters, KindBytes:
	default:
		errs = multierror.Append(errs, errors.Errorf("scale %q: unknown codec kind %q", c.Name, c.Codec))
	}

	if len(c.Notes) < 2 {
		errs = multierror.Append(errs, errors.Errorf("scale %q: needs at least 2 notes, got %d", c.Name, len(c.Notes)))
	}

	seen := make(map[string]bool, len(c.Notes))
	for _, n := range c.Notes {
		if n == "" {
			errs = multierror.Append(errs, errors.Errorf("scale %q: empty note name", c.Name))
			continue
		}
		if n == SpaceToken {
			errs = multierror.Append(errs, errors.Errorf("scale %q: note %q collides with the space sentinel", c.Name, n))
		}
		if seen[n] {
			errs = multierror.Append(errs, errors.Errorf("scale %q: duplicate note %q", c.Name, n))
		}
		seen[n] = true
	}

	return errs
}

// New builds the codec named by the configuration. The zero kind defaults
// to the letter codec.
func New(cfg *Config) (Codec, error) {
	switch cfg.Codec {
	case "", KindLetters:
		return NewLetterCodec(cfg)
	case KindBytes:
		return NewByteCodec(cfg)
	default:
		return nil, errors.Errorf("unknown codec kind %q", cfg.Codec)
	}
}
