package iso7816

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/gregLibert/apdu/pkg/bytetools"
)

// APDU Limits and Constants according to ISO 7816-3.
const (
	// HeaderLen is the size of the mandatory CLA INS P1 P2 header.
	HeaderLen = 4

	// MaxShortLc is the maximum data length (Nc) encodable in Short Length mode (1 byte).
	MaxShortLc = 255

	// MaxShortLe is the maximum expected response length (Ne) encodable in Short Length mode.
	// In Short mode, 0x00 encodes 256.
	MaxShortLe = 256

	// MaxExtendedLc is the limit for Lc in Extended mode (16-bit unsigned).
	MaxExtendedLc = 65535

	// MaxExtendedLe is the maximum Ne encodable in Extended Length mode.
	// In Extended mode, 0x0000 encodes 65536.
	MaxExtendedLe = 65536

	// MaxAPDUBufferSize is the largest C-APDU this package can produce.
	// Header(4) + ExtLc(3) + MaxData(65535) + ExtLe(2).
	MaxAPDUBufferSize = HeaderLen + 3 + MaxExtendedLc + 2
)

// Command is an immutable command APDU (C-APDU).
//
// The zero Ne means no response data is requested. The value owns its data buffer:
// the constructor copies the caller's slice and Data returns a copy.
type Command struct {
	cla, ins, p1, p2 byte
	data             []byte
	ne               int
}

// NewCommand builds a command. It fails with ErrInvalidCommand if ne is outside [0, 65536]
// or if data is longer than 65535 bytes.
func NewCommand(cla, ins, p1, p2 byte, data []byte, ne int) (*Command, error) {
	if err := validateLengths(len(data), ne); err != nil {
		return nil, err
	}

	c := &Command{cla: cla, ins: ins, p1: p1, p2: p2, ne: ne}
	if len(data) > 0 {
		c.data = bytes.Clone(data)
	}
	return c, nil
}

// MustCommand is like NewCommand but panics on invalid lengths.
// It is meant for static command tables.
func MustCommand(cla, ins, p1, p2 byte, data []byte, ne int) *Command {
	c, err := NewCommand(cla, ins, p1, p2, data, ne)
	if err != nil {
		panic(err)
	}
	return c
}

func validateLengths(nc, ne int) error {
	if ne < 0 || ne > MaxExtendedLe {
		return fmt.Errorf("%w: Ne %d out of range [0, %d]", ErrInvalidCommand, ne, MaxExtendedLe)
	}
	if nc > MaxExtendedLc {
		return fmt.Errorf("%w: Nc %d exceeds %d", ErrInvalidCommand, nc, MaxExtendedLc)
	}
	return nil
}

func (c *Command) Class() byte       { return c.cla }
func (c *Command) Instruction() byte { return c.ins }
func (c *Command) P1() byte          { return c.p1 }
func (c *Command) P2() byte          { return c.p2 }

// Ne returns the maximum expected response length (0 means none).
func (c *Command) Ne() int { return c.ne }

// Nc returns the length of the data field.
func (c *Command) Nc() int { return len(c.data) }

// Data returns a copy of the command data field.
func (c *Command) Data() []byte {
	return bytes.Clone(c.data)
}

// IsExtended reports whether the command needs Extended Length encoding,
// i.e. Nc > 255 or Ne > 256.
func (c *Command) IsExtended() bool {
	return len(c.data) > MaxShortLc || c.ne > MaxShortLe
}

// Bytes encodes the command, choosing Short or Extended encoding automatically.
func (c *Command) Bytes() []byte {
	return c.Encode(false)
}

// Encode encodes the command. Extended encoding is used when forceExtended is set,
// and silently whenever the lengths do not fit Short encoding.
func (c *Command) Encode(forceExtended bool) []byte {
	return c.AppendTo(make([]byte, 0, c.encodedLen(forceExtended)), forceExtended)
}

// AppendTo appends the encoded command to dst and returns the extended slice.
func (c *Command) AppendTo(dst []byte, forceExtended bool) []byte {
	dst = append(dst, c.cla, c.ins, c.p1, c.p2)

	nc := len(c.data)
	extended := forceExtended || c.IsExtended()

	// Lc + Data (Case 3/4)
	if nc > 0 {
		if extended {
			lc := bytetools.PutUint16(nc)
			dst = append(dst, 0x00, lc[0], lc[1])
		} else {
			dst = append(dst, byte(nc))
		}
		dst = append(dst, c.data...)
	}

	// Le (Case 2/4)
	if c.ne > 0 {
		if !extended {
			// 256 truncates to 0x00
			dst = append(dst, byte(c.ne))
		} else {
			// Without Lc, a leading 00 tells an extended Le apart from a short one.
			if nc == 0 {
				dst = append(dst, 0x00)
			}
			le := bytetools.PutUint16(c.ne)
			dst = append(dst, le[0], le[1])
		}
	}

	return dst
}

func (c *Command) encodedLen(forceExtended bool) int {
	n := HeaderLen + len(c.data)
	extended := forceExtended || c.IsExtended()

	if len(c.data) > 0 {
		n++
		if extended {
			n += 2
		}
	}
	if c.ne > 0 {
		n++
		if extended {
			n++
			if len(c.data) == 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both commands carry the same header, data and Ne.
func (c *Command) Equal(other *Command) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.cla == other.cla &&
		c.ins == other.ins &&
		c.p1 == other.p1 &&
		c.p2 == other.p2 &&
		c.ne == other.ne &&
		bytes.Equal(c.data, other.data)
}

// Hash returns a content hash. Equal commands hash identically.
func (c *Command) Hash() uint64 {
	d := xxhash.New()
	ne := [4]byte{byte(c.ne >> 24), byte(c.ne >> 16), byte(c.ne >> 8), byte(c.ne)}
	_, _ = d.Write([]byte{c.cla, c.ins, c.p1, c.p2})
	_, _ = d.Write(ne[:])
	_, _ = d.Write(c.data)
	return d.Sum64()
}

// String returns a readable representation of the command.
func (c *Command) String() string {
	return fmt.Sprintf("Command{CLA: 0x%s, INS: 0x%s, P1: 0x%s, P2: 0x%s, Data: [%s], Ne: %d}",
		bytetools.ByteToHex(c.cla), bytetools.ByteToHex(c.ins),
		bytetools.ByteToHex(c.p1), bytetools.ByteToHex(c.p2),
		bytetools.ToHexString(c.data), c.ne)
}

// ParseCommand decodes a C-APDU, detecting Short or Extended encoding.
func ParseCommand(raw []byte) (*Command, error) {
	c, _, err := DecodeCommand(raw)
	return c, err
}

// DecodeCommand decodes a C-APDU and also reports which length encoding it used.
func DecodeCommand(raw []byte) (*Command, Framing, error) {
	if len(raw) < HeaderLen {
		return nil, FramingNone, fmt.Errorf("%w: command length %d, need at least %d", ErrTooShort, len(raw), HeaderLen)
	}

	body := raw[HeaderLen:]
	f, err := classifyBody(body)
	if err != nil {
		return nil, FramingNone, err
	}

	c, err := NewCommand(raw[0], raw[1], raw[2], raw[3], body[f.dataStart:f.dataEnd], f.ne())
	if err != nil {
		return nil, FramingNone, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return c, f.kind.framing(), nil
}
