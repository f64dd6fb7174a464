package cipher

import (
	"sort"

	"github.com/pkg/errors"
)

// The built-in scales. Indexes into Notes are what carries meaning, so the
// order of every alphabet below is part of the format and must not change.
var builtin = []*Config{
	{
		Name:  "duochroma",
		Codec: KindBytes,
		Notes: []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
		Colors: map[string]string{
			"C": "red", "C#": "hi-red",
			"D": "yellow", "D#": "hi-yellow",
			"E": "green",
			"F": "cyan", "F#": "hi-cyan",
			"G": "blue", "G#": "hi-blue",
			"A": "magenta", "A#": "hi-magenta",
			"B": "white",
		},
	},
	{
		Name:  "octatonic_half_whole",
		Codec: KindLetters,
		Notes: []string{"E", "F", "G", "G#", "A#", "B", "C#", "D"},
		Colors: map[string]string{
			"E": "green", "F": "cyan", "G": "blue", "G#": "hi-blue",
			"A#": "hi-magenta", "B": "white", "C#": "hi-red", "D": "yellow",
		},
	},
	{
		Name:  "locrian_plus2",
		Codec: KindLetters,
		Notes: []string{"E", "F", "F#", "G", "A", "Bb", "C", "D"},
		Colors: map[string]string{
			"E": "green", "F": "cyan", "F#": "hi-cyan", "G": "blue",
			"A": "magenta", "C": "red", "D": "yellow",
		},
	},
	{
		Name:  "dorian_flat2",
		Codec: KindLetters,
		Notes: []string{"E", "F", "G", "A", "B", "C", "C#", "D"},
		Colors: map[string]string{
			"E": "green", "F": "cyan", "G": "blue", "A": "magenta",
			"B": "white", "C": "red", "C#": "hi-red", "D": "yellow",
		},
	},
	{
		Name:  "diminished_octatonic_whole_half",
		Codec: KindLetters,
		Notes: []string{"E", "F#", "G", "A", "A#", "B", "C", "D#"},
		Colors: map[string]string{
			"E": "green", "F#": "hi-cyan", "G": "blue", "A": "magenta",
			"A#": "hi-magenta", "B": "white", "C": "red", "D#": "hi-yellow",
		},
	},
	{
		Name:  "bebop_mixolydian",
		Codec: KindLetters,
		Notes: []string{"E", "F#", "G#", "A", "B", "C#", "D", "D#"},
		Colors: map[string]string{
			"E": "green", "F#": "hi-cyan", "G#": "hi-blue", "A": "magenta",
			"B": "white", "C#": "hi-red", "D": "yellow", "D#": "hi-yellow",
		},
	},
}

var registry = make(map[string]*Config)

func init() {
	for _, cfg := range builtin {
		registry[cfg.Name] = cfg
	}
}

// Register adds a scale to the registry. Duplicate names are refused so a
// configuration file cannot accidentally redefine a built-in scale.
func Register(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if _, ok := registry[cfg.Name]; ok {
		return errors.Errorf("scale %q is already registered", cfg.Name)
	}
	registry[cfg.Name] = cfg
	return nil
}

// FindConfig returns the scale definition registered under the given name.
func FindConfig(name string) (*Config, bool) {
	cfg, ok := registry[name]
	return cfg, ok
}

// Find builds the codec for the named scale.
func Find(name string) (Codec, error) {
	cfg, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown scale %q, pick one of %v", name, Names())
	}
	return New(cfg)
}

// Names lists the registered scale names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
