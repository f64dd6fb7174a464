package util

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// ReadInput resolves the input for a command: an explicit --text value
// wins, then --file, and with neither of them the standard input is read
// to the end.
func ReadInput(text, file *string) (string, error) {
	if text != nil {
		return *text, nil
	}

	if file != nil && *file != "" {
		data, err := ioutil.ReadFile(*file)
		if err != nil {
			return "", errors.Wrapf(err, "Could not read input file %v", *file)
		}
		return string(data), nil
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "Could not read the standard input")
	}
	return string(data), nil
}
