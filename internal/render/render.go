package render

import (
	"strings"

	"melodycipher/internal/cipher"
)

const (
	reset = "\x1b[0m"

	// fallback is used for notes the scale has no color entry for
	fallback = "\x1b[37m"
)

// palette maps the color names usable in a scale's color table to ANSI
// escapes. The "hi-" prefix selects the bright variant.
var palette = map[string]string{
	"black":      "\x1b[30m",
	"red":        "\x1b[31m",
	"green":      "\x1b[32m",
	"yellow":     "\x1b[33m",
	"blue":       "\x1b[34m",
	"magenta":    "\x1b[35m",
	"cyan":       "\x1b[36m",
	"white":      "\x1b[97m",
	"hi-red":     "\x1b[91m",
	"hi-green":   "\x1b[92m",
	"hi-yellow":  "\x1b[93m",
	"hi-blue":    "\x1b[94m",
	"hi-magenta": "\x1b[95m",
	"hi-cyan":    "\x1b[96m",
}

// Plain renders a token sequence as text: notes joined by single spaces,
// the space sentinel verbatim and the break sentinel as a line break.
func Plain(tokens []string) string {
	return join(tokens, func(tok string) string {
		return tok
	})
}

// Notes renders a token sequence like Plain but wraps every note in the
// ANSI color assigned to it by the scale's color table.
func Notes(cfg *cipher.Config, tokens []string) string {
	return join(tokens, func(tok string) string {
		if tok == cipher.SpaceToken {
			return tok
		}
		color, ok := palette[cfg.Colors[tok]]
		if !ok {
			color = fallback
		}
		return color + tok + reset
	})
}

func join(tokens []string, style func(string) string) string {
	var out strings.Builder
	lineStart := true
	for _, tok := range tokens {
		if tok == cipher.BreakToken {
			out.WriteByte('\n')
			lineStart = true
			continue
		}
		if !lineStart {
			out.WriteByte(' ')
		}
		out.WriteString(style(tok))
		lineStart = false
	}
	return out.String()
}
