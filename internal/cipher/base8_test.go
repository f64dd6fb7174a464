package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// letterScale is the seven natural notes padded with a rest so the
// alphabet covers all eight octal digits.
var letterScale = &Config{
	Name:  "naturals",
	Codec: KindLetters,
	Notes: []string{"C", "D", "E", "F", "G", "A", "B", "R"},
}

func Test_LetterCodec_TooFewNotes(t *testing.T) {
	cfg := &Config{
		Name:  "seven",
		Notes: []string{"C", "D", "E", "F", "G", "A", "B"},
	}
	_, err := NewLetterCodec(cfg)
	require.Error(t, err)
}

func Test_LetterCodec_EncodeHI(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	// H is index 7 -> (0,7), I is index 8 -> (1,0)
	tokens := codec.Encode("HI")
	require.Equal(t, []string{"C", "R", "D", "C"}, tokens)

	require.Equal(t, "HI", codec.Decode(strings.Join(tokens, " ")))
}

func Test_LetterCodec_RoundTrip(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	for _, text := range []string{"A", "Z", "HELLO", "THEQUICKBROWNFOX"} {
		tokens := codec.Encode(text)
		require.Len(t, tokens, len(text)*2)
		require.Equal(t, text, codec.Decode(strings.Join(tokens, " ")))
	}
}

func Test_LetterCodec_LowercaseDecodesUpper(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	tokens := codec.Encode("hello")
	require.Equal(t, codec.Encode("HELLO"), tokens)
	require.Equal(t, "HELLO", codec.Decode(strings.Join(tokens, " ")))
}

func Test_LetterCodec_SpaceSentinel(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	tokens := codec.Encode(" ")
	require.Equal(t, []string{SpaceToken}, tokens)
	require.Equal(t, " ", codec.Decode(SpaceToken))

	tokens = codec.Encode("A B")
	require.Equal(t, []string{"C", "C", SpaceToken, "C", "D"}, tokens)
	require.Equal(t, "A B", codec.Decode(strings.Join(tokens, " ")))
}

func Test_LetterCodec_NewlineSentinel(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	tokens := codec.Encode("A\nB")
	require.Equal(t, []string{"C", "C", BreakToken, "C", "D"}, tokens)
	require.Equal(t, "A\nB", codec.Decode(strings.Join(tokens, " ")))
}

func Test_LetterCodec_OctalBranch(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	// '!' is 0o041: one full chunk (0,4) and a dangling digit 1 which
	// only yields the high note
	tokens := codec.Encode("!")
	require.Equal(t, []string{"C", "G", "D"}, tokens)

	// the decoder does not invert the octal branch: the full pair lands
	// on value 4 ('E') and the lone note is an incomplete pair
	require.Equal(t, "E?", codec.Decode(strings.Join(tokens, " ")))
}

func Test_LetterCodec_UnknownNote(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	require.Equal(t, "A?B", codec.Decode("C C X Y C D"))
}

func Test_LetterCodec_OddTokenCount(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	// the dangling token ends its own line only, the next line still decodes
	require.Equal(t, "A?\nB", codec.Decode("C C C\nC D"))
}

func Test_LetterCodec_ValueOutOfLetterRange(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	// (4,0) combines to 32 which is past Z
	require.Equal(t, "?", codec.Decode("G C"))
}

func Test_LetterCodec_BlankLinesSurvive(t *testing.T) {
	codec, err := NewLetterCodec(letterScale)
	require.NoError(t, err)

	require.Equal(t, "A\n\nB", codec.Decode("C C\n\nC D"))
}
