// Package bytetools holds the small byte helpers shared by the APDU codec:
// unsigned views of bytes, big-endian 16-bit packing and uppercase hex rendering.
package bytetools

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// AsUnsignedInt returns the byte interpreted as an unsigned value (0 to 255).
func AsUnsignedInt(b byte) int {
	return int(b)
}

// BytesToInt combines two bytes big-endian into a value in the range 0 to 65535.
func BytesToInt(high, low byte) int {
	return AsUnsignedInt(high)<<8 | AsUnsignedInt(low)
}

// PutUint16 returns the low 16 bits of v, big-endian.
// 65536 therefore encodes as 00 00.
func PutUint16(v int) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// ByteToHex renders a single byte as two uppercase hex digits (0x0F -> "0F").
func ByteToHex(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

// ToHexString renders data as uppercase hex with no separators.
func ToHexString(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 2)
	for _, b := range data {
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	return sb.String()
}

// ParseHex decodes a hex string, accepting mixed case and ignoring spaces and ':' separators
// so that traces like "00 A4 04 00" or "00:a4:04:00" can be pasted as-is.
func ParseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", ":", "", "\t", "", "\n", "").Replace(s)

	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return data, nil
}
