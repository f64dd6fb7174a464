package cipher

import (
	"strings"
)

// decodeUnit converts the combined value of a note pair into an output
// rune. It returns false when the value falls outside the codec's range.
type decodeUnit func(val int) (rune, bool)

// pairDecoder walks whitespace-separated note tokens two at a time and is
// shared by both codec variants so that malformed input is handled the same
// way everywhere:
//
//   - a trailing token with no partner emits one placeholder and ends the line
//   - an unrecognized note or an out-of-range value emits one placeholder
//     and decoding continues with the next pair
type pairDecoder struct {
	cfg  *Config
	base int
	unit decodeUnit

	// spaces controls whether the "/" sentinel is recognized as a literal space
	spaces bool
}

func (d *pairDecoder) decode(encoded string) string {
	lines := strings.Split(encoded, "\n")
	decoded := make([]string, 0, len(lines))
	for _, line := range lines {
		decoded = append(decoded, d.decodeLine(strings.Fields(strings.TrimSpace(line))))
	}
	return strings.Join(decoded, "\n")
}

func (d *pairDecoder) decodeLine(tokens []string) string {
	var out strings.Builder
	for i := 0; i < len(tokens); {
		if d.spaces && tokens[i] == SpaceToken {
			out.WriteByte(' ')
			i++
			continue
		}

		if i+1 >= len(tokens) {
			// incomplete pair, nothing more can be made of this line
			out.WriteRune(Placeholder)
			break
		}

		hi := d.cfg.Index(tokens[i])
		lo := d.cfg.Index(tokens[i+1])
		i += 2

		if hi < 0 || lo < 0 {
			out.WriteRune(Placeholder)
			continue
		}

		if r, ok := d.unit(hi*d.base + lo); ok {
			out.WriteRune(r)
		} else {
			out.WriteRune(Placeholder)
		}
	}
	return out.String()
}
