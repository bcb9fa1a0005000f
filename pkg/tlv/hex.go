package tlv

import (
	"strings"

	"github.com/gregLibert/apdu/pkg/bytetools"
)

// Hex constructs a byte slice from a series of hex strings.
// It panics on invalid input and is meant for fixtures, e.g. Hex("00 A4 04 00", "02", "3F00").
func Hex(parts ...string) []byte {
	data, err := bytetools.ParseHex(strings.Join(parts, ""))
	if err != nil {
		panic(err.Error())
	}
	return data
}
