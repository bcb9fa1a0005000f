// Package tlv renders BER-TLV (Basic Encoding Rules - Tag-Length-Value) payloads,
// such as R-APDU data fields, as an indented tree for inspection.
package tlv

import (
	"fmt"
	"strings"

	"github.com/gregLibert/apdu/pkg/bytetools"
	"github.com/moov-io/bertlv"
)

// Describe decodes data as BER-TLV and returns one line per tag:
//
//	6F (10):
//	  84 (2): 1122
//	  A5 (4):
//	    50 (2): 4142 ("AB")
//
// Constructed tags list their children one level deeper. Primitive values that are
// entirely printable ASCII are echoed as text.
func Describe(data []byte) (string, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return "", fmt.Errorf("bertlv decode failed: %w", err)
	}

	var lines []string
	if err := writePackets(&lines, packets, 0); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func writePackets(lines *[]string, packets []bertlv.TLV, depth int) error {
	indent := strings.Repeat("  ", depth)

	for _, p := range packets {
		tag := strings.ToUpper(p.Tag)

		if len(p.TLVs) > 0 {
			inner, err := bertlv.Encode(p.TLVs)
			if err != nil {
				return fmt.Errorf("re-encoding children of %s: %w", tag, err)
			}
			*lines = append(*lines, fmt.Sprintf("%s%s (%d):", indent, tag, len(inner)))
			if err := writePackets(lines, p.TLVs, depth+1); err != nil {
				return err
			}
			continue
		}

		*lines = append(*lines, fmt.Sprintf("%s%s (%d): %s", indent, tag, len(p.Value), formatValue(p.Value)))
	}
	return nil
}

func formatValue(data []byte) string {
	hexVal := bytetools.ToHexString(data)
	if len(data) > 0 && isPrintable(data) {
		return fmt.Sprintf("%s (%q)", hexVal, string(data))
	}
	return hexVal
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		if b < 32 || b > 126 {
			return false
		}
	}
	return true
}

// MakeSafeASCII replaces every non-printable byte with '.'.
func MakeSafeASCII(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 && r <= 126 {
			return r
		}
		return '.'
	}, string(data))
}
