package cipher

const (
	// SpaceToken is the sentinel emitted for a literal space in the input.
	SpaceToken = "/"
	// BreakToken is the sentinel emitted for a newline in the input.
	BreakToken = "\n"
	// Placeholder takes the place of anything that cannot be decoded.
	Placeholder = '?'
)

// Codec kinds selectable in a scale definition.
const (
	KindLetters = "letters"
	KindBytes   = "bytes"
)

type Codec interface {
	// Name is the user-friendly name of the scale this codec encodes with
	Name() string

	// Config returns the scale configuration backing this codec
	Config() *Config

	// Encode will take plain text and turn it into a sequence of note tokens
	Encode(text string) []string

	// Decode is the reverse process of encoding. It never fails -- input
	// that cannot be decoded degrades to '?' placeholders instead.
	Decode(encoded string) string
}
