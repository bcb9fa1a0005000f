package iso7816

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/gregLibert/apdu/pkg/bytetools"
)

// StatusWord represents the two-byte status trailer (SW1-SW2) returned by the card.
type StatusWord uint16

// SW_NO_ERROR is the only status this package gives a meaning to.
const SW_NO_ERROR StatusWord = 0x9000

// NewStatusWord creates a StatusWord instance from two separate bytes.
func NewStatusWord(sw1, sw2 byte) StatusWord {
	return StatusWord(bytetools.BytesToInt(sw1, sw2))
}

// SW1 returns the first byte (high byte) of the status word.
func (sw StatusWord) SW1() byte {
	return byte(sw >> 8)
}

// SW2 returns the second byte (low byte) of the status word.
func (sw StatusWord) SW2() byte {
	return byte(sw)
}

// IsSuccess returns true for 9000 only.
func (sw StatusWord) IsSuccess() bool {
	return sw == SW_NO_ERROR
}

func (sw StatusWord) String() string {
	return fmt.Sprintf("%04X", uint16(sw))
}

// Response is an immutable response APDU (R-APDU): optional data followed by SW1 SW2.
type Response struct {
	data   []byte
	status StatusWord
}

// NewResponse builds a response. The data slice is copied.
func NewResponse(sw1, sw2 byte, data []byte) *Response {
	r := &Response{status: NewStatusWord(sw1, sw2)}
	if len(data) > 0 {
		r.data = bytes.Clone(data)
	}
	return r
}

// ParseResponse parses raw bytes received from the card.
// The input must contain at least 2 bytes (SW1, SW2).
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: response length %d, need at least 2", ErrTooShort, len(raw))
	}

	indexSW1 := len(raw) - 2
	return NewResponse(raw[indexSW1], raw[indexSW1+1], raw[:indexSW1]), nil
}

// Data returns a copy of the response data field.
func (r *Response) Data() []byte {
	return bytes.Clone(r.data)
}

func (r *Response) SW1() byte          { return r.status.SW1() }
func (r *Response) SW2() byte          { return r.status.SW2() }
func (r *Response) Status() StatusWord { return r.status }

// IsSuccessful reports whether the card answered 90 00.
func (r *Response) IsSuccessful() bool {
	return r.status.IsSuccess()
}

// Bytes encodes the response as Data || SW1 || SW2.
func (r *Response) Bytes() []byte {
	out := make([]byte, 0, len(r.data)+2)
	out = append(out, r.data...)
	return append(out, r.status.SW1(), r.status.SW2())
}

// Equal reports whether both responses carry the same data and status.
func (r *Response) Equal(other *Response) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.status == other.status && bytes.Equal(r.data, other.data)
}

// Hash returns a content hash. Equal responses hash identically.
func (r *Response) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{r.status.SW1(), r.status.SW2()})
	_, _ = d.Write(r.data)
	return d.Sum64()
}

func (r *Response) String() string {
	return fmt.Sprintf("Response{SW1: 0x%s, SW2: 0x%s, Data: [%s]}",
		bytetools.ByteToHex(r.SW1()), bytetools.ByteToHex(r.SW2()), bytetools.ToHexString(r.data))
}
