package render

import (
	"testing"

	"melodycipher/internal/cipher"

	"github.com/stretchr/testify/require"
)

var scale = &cipher.Config{
	Name:  "naturals",
	Notes: []string{"C", "D", "E", "F", "G", "A", "B", "R"},
	Colors: map[string]string{
		"C": "red",
	},
}

func Test_Plain(t *testing.T) {
	tokens := []string{"C", "D", cipher.SpaceToken, "E", cipher.BreakToken, "F", "G"}
	require.Equal(t, "C D / E\nF G", Plain(tokens))
}

func Test_Plain_Empty(t *testing.T) {
	require.Equal(t, "", Plain(nil))
}

func Test_Notes_UsesColorTable(t *testing.T) {
	out := Notes(scale, []string{"C"})
	require.Equal(t, "\x1b[31mC\x1b[0m", out)
}

func Test_Notes_FallbackColor(t *testing.T) {
	// D has no color entry, so the fixed fallback applies
	out := Notes(scale, []string{"D"})
	require.Equal(t, "\x1b[37mD\x1b[0m", out)
}

func Test_Notes_SentinelsStayUnstyled(t *testing.T) {
	out := Notes(scale, []string{"C", cipher.SpaceToken, "C", cipher.BreakToken, "C"})
	require.Equal(t, "\x1b[31mC\x1b[0m / \x1b[31mC\x1b[0m\n\x1b[31mC\x1b[0m", out)
}
