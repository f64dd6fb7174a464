package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// builtinNames pins the scales shipped with the binary. Registry tests
// iterate this list instead of Names() so that scales registered by other
// tests in this package cannot influence the outcome.
var builtinNames = []string{
	"duochroma",
	"octatonic_half_whole",
	"locrian_plus2",
	"dorian_flat2",
	"diminished_octatonic_whole_half",
	"bebop_mixolydian",
}

func Test_Registry_BuiltinScales(t *testing.T) {
	names := Names()
	for _, name := range builtinNames {
		require.Contains(t, names, name)

		codec, err := Find(name)
		require.NoError(t, err)
		require.Equal(t, name, codec.Name())
	}
}

func Test_Registry_DuochromaIsByteCodec(t *testing.T) {
	codec, err := Find("duochroma")
	require.NoError(t, err)
	require.IsType(t, &ByteCodec{}, codec)
	require.Equal(t, 12, codec.Config().Base())
}

func Test_Registry_BuiltinsRoundTrip(t *testing.T) {
	for _, name := range builtinNames {
		codec, err := Find(name)
		require.NoError(t, err)

		text := "MELODY"
		decoded := codec.Decode(strings.Join(codec.Encode(text), " "))
		if _, ok := codec.(*ByteCodec); ok {
			require.Equal(t, text, decoded, "scale %v", name)
		} else {
			require.Equal(t, strings.ToUpper(text), decoded, "scale %v", name)
		}
	}
}

func Test_Registry_UnknownScale(t *testing.T) {
	_, err := Find("no_such_scale")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown scale")
}

func Test_Registry_RegisterAndFind(t *testing.T) {
	cfg := &Config{
		Name:  "test_registry_naturals",
		Codec: KindLetters,
		Notes: []string{"C", "D", "E", "F", "G", "A", "B", "R"},
	}
	require.NoError(t, Register(cfg))

	codec, err := Find(cfg.Name)
	require.NoError(t, err)
	require.Equal(t, "HI", codec.Decode("C R D C"))
}

func Test_Registry_RefusesDuplicates(t *testing.T) {
	cfg := &Config{
		Name:  "duochroma",
		Notes: []string{"C", "D"},
	}
	err := Register(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func Test_Registry_RefusesInvalid(t *testing.T) {
	err := Register(&Config{Name: "test_registry_invalid"})
	require.Error(t, err)
	_, ok := FindConfig("test_registry_invalid")
	require.False(t, ok)
}
