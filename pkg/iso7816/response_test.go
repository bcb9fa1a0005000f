package iso7816

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/gregLibert/apdu/pkg/tlv"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want *Response
	}{
		{
			name: "No response data",
			raw:  tlv.Hex("17 1D"),
			want: NewResponse(byte1, byte2, nil),
		},
		{
			name: "1 byte of response data",
			raw:  tlv.Hex("1F", "17 1D"),
			want: NewResponse(byte1, byte2, []byte{byte3}),
		},
		{
			name: "Multiple bytes of response data",
			raw:  tlv.Hex("1F 25 29", "17 1D"),
			want: NewResponse(byte1, byte2, []byte{byte3, byte4, byte5}),
		},
		{
			name: "Success trailer",
			raw:  tlv.Hex("01 02 03", "90 00"),
			want: NewResponse(0x90, 0x00, []byte{0x01, 0x02, 0x03}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Response mismatch\nwant: %s\ngot:  %s", tt.want, got)
			}
			if got.Hash() != tt.want.Hash() {
				t.Errorf("Hash mismatch for equal responses")
			}
			if !bytes.Equal(tt.want.Bytes(), tt.raw) {
				t.Errorf("Bytes() = %X, want %X", tt.want.Bytes(), tt.raw)
			}
			if diff := cmp.Diff(tt.raw[:len(tt.raw)-2], got.Data(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseResponse_TooShort(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, {0x17}} {
		_, err := ParseResponse(raw)
		if !errors.Is(err, ErrTooShort) || !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseResponse(%X) error = %v, want ErrTooShort", raw, err)
		}
	}
}

func TestResponse_IsSuccessful(t *testing.T) {
	tests := []struct {
		sw1, sw2 byte
		want     bool
	}{
		{0x90, 0x00, true},
		{0x90, 0x42, false},
		{0x80, 0x00, false},
		{0x61, 0x10, false}, // more data available is not final success
		{0x6A, 0x82, false},
	}

	for _, tt := range tests {
		r := NewResponse(tt.sw1, tt.sw2, nil)
		if got := r.IsSuccessful(); got != tt.want {
			t.Errorf("IsSuccessful(%02X%02X) = %v, want %v", tt.sw1, tt.sw2, got, tt.want)
		}
	}

	r, err := ParseResponse(tlv.Hex("90 00"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !r.IsSuccessful() || len(r.Data()) != 0 {
		t.Errorf("9000 should be a successful empty response, got %s", r)
	}
}

func TestResponse_String(t *testing.T) {
	want := "Response{SW1: 0x90, SW2: 0xFA, Data: [CAFE]}"
	if got := NewResponse(0x90, 0xFA, []byte{0xca, 0xfe}).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResponse_OwnsData(t *testing.T) {
	raw := tlv.Hex("CA FE 90 00")
	r, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	raw[0] = 0x00
	out := r.Data()
	out[1] = 0x00

	if got := r.Data(); !bytes.Equal(got, []byte{0xCA, 0xFE}) {
		t.Errorf("Response data was mutated from outside: %X", got)
	}
}

func TestResponse_EqualAndHash(t *testing.T) {
	a := NewResponse(0x90, 0x00, nil)
	b := NewResponse(0x90, 0x00, []byte{})
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("nil and empty data should be equal with the same hash")
	}

	for _, other := range []*Response{
		NewResponse(0x90, 0x01, nil),
		NewResponse(0x91, 0x00, nil),
		NewResponse(0x90, 0x00, []byte{0x00}),
		nil,
	} {
		if a.Equal(other) {
			t.Errorf("%s should differ from %v", a, other)
		}
	}
}

func TestStatusWord(t *testing.T) {
	sw := NewStatusWord(0x6A, 0x82)
	if sw.SW1() != 0x6A || sw.SW2() != 0x82 {
		t.Errorf("SW1/SW2 = %02X/%02X, want 6A/82", sw.SW1(), sw.SW2())
	}
	if sw.String() != "6A82" {
		t.Errorf("String() = %q, want 6A82", sw.String())
	}
	if sw.IsSuccess() || !SW_NO_ERROR.IsSuccess() {
		t.Error("only 9000 is a success")
	}
}
