// Package armor wraps an encoded note sequence into a single base91 token
// so that a melody can be pasted through media that mangle whitespace.
package armor

import (
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""
)

var armorEncoding = base91.NewEncoding(cb91)

// Encode armors the rendered note sequence.
func Encode(sequence string) string {
	return armorEncoding.EncodeToString([]byte(sequence))
}

// Decode is the reverse process of armoring.
func Decode(armored string) (string, error) {
	res, err := armorEncoding.DecodeString(armored)
	if err != nil {
		err = errors.WithStack(err)
		return "", err
	}
	return string(res), nil
}
