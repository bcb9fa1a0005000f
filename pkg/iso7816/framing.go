package iso7816

import (
	"fmt"

	"github.com/gregLibert/apdu/pkg/bytetools"
)

// BODY LAYOUTS (bytes following the 4-byte header):
//
//	bodyNone        (empty)                     Case 1
//	bodyShortLe     Le                          Case 2 Short
//	bodyExtendedLe  00 Le1 Le2                  Case 2 Extended
//	bodyShortLc     Lc Data [Le]                Case 3/4 Short
//	bodyExtendedLc  00 Lc1 Lc2 Data [Le1 Le2]   Case 3/4 Extended
//
// The layouts overlap: "00 xx yy" is an extended Le when nothing follows, but an
// extended Lc when more bytes do. classifyBody resolves this from the body length alone.

// Framing is the length encoding detected in a C-APDU.
type Framing int

const (
	// FramingNone is a header-only command: no Lc and no Le.
	FramingNone Framing = iota
	FramingShort
	FramingExtended
)

func (f Framing) String() string {
	switch f {
	case FramingNone:
		return "none"
	case FramingShort:
		return "short"
	case FramingExtended:
		return "extended"
	default:
		return fmt.Sprintf("Framing(%d)", int(f))
	}
}

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyShortLe
	bodyExtendedLe
	bodyShortLc
	bodyExtendedLc
)

func (k bodyKind) framing() Framing {
	switch k {
	case bodyShortLe, bodyShortLc:
		return FramingShort
	case bodyExtendedLe, bodyExtendedLc:
		return FramingExtended
	default:
		return FramingNone
	}
}

// bodyLayout is the result of classifyBody: the layout variant plus the offsets it resolved.
// le holds the raw Le field (nil, 1 or 2 bytes).
type bodyLayout struct {
	kind               bodyKind
	dataStart, dataEnd int
	le                 []byte
}

// ne decodes the Le field. 00 stands for 256 and 0000 for 65536.
func (l bodyLayout) ne() int {
	switch len(l.le) {
	case 1:
		if l.le[0] == 0x00 {
			return MaxShortLe
		}
		return bytetools.AsUnsignedInt(l.le[0])
	case 2:
		if n := bytetools.BytesToInt(l.le[0], l.le[1]); n != 0 {
			return n
		}
		return MaxExtendedLe
	default:
		return 0
	}
}

// classifyBody maps the bytes after the header to one layout variant.
func classifyBody(body []byte) (bodyLayout, error) {
	switch {
	case len(body) == 0:
		return bodyLayout{kind: bodyNone}, nil

	case len(body) == 1:
		return bodyLayout{kind: bodyShortLe, le: body}, nil

	case body[0] == 0x00 && len(body) == 3:
		return bodyLayout{kind: bodyExtendedLe, le: body[1:3]}, nil

	case body[0] == 0x00 && len(body) > 3:
		nc := bytetools.BytesToInt(body[1], body[2])
		return classifyLc(body, bodyExtendedLc, nc, 3, 2)

	default:
		nc := bytetools.AsUnsignedInt(body[0])
		return classifyLc(body, bodyShortLc, nc, 1, 1)
	}
}

// classifyLc resolves a body that starts with an Lc field of lcLen bytes.
// After the data, the body must end or hold exactly one Le field of leLen bytes.
func classifyLc(body []byte, kind bodyKind, nc, lcLen, leLen int) (bodyLayout, error) {
	if nc == 0 {
		return bodyLayout{}, fmt.Errorf("%w: Lc is zero but %d body bytes follow", ErrMalformed, len(body)-lcLen)
	}

	end := lcLen + nc
	if end > len(body) {
		return bodyLayout{}, fmt.Errorf("%w: Lc %d, only %d bytes available", ErrTruncated, nc, len(body)-lcLen)
	}

	l := bodyLayout{kind: kind, dataStart: lcLen, dataEnd: end}

	switch rest := len(body) - end; rest {
	case 0:
	case leLen:
		l.le = body[end:]
	default:
		return bodyLayout{}, fmt.Errorf("%w: %d bytes left after data", ErrTrailingBytes, rest)
	}
	return l, nil
}
