package tlv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		expectedLines []string
	}{
		{
			name: "Single Primitive",
			data: Hex("84 02 1122"),
			expectedLines: []string{
				"84 (2): 1122",
			},
		},
		{
			name: "Printable Value",
			data: Hex("50 03 414243"),
			expectedLines: []string{
				`50 (3): 414243 ("ABC")`,
			},
		},
		{
			name: "Sibling Tags",
			data: Hex("84 02 1122", "9F02 01 AA"),
			expectedLines: []string{
				"84 (2): 1122",
				"9F02 (1): AA",
			},
		},
		{
			name: "Nested Template",
			data: Hex(
				"6F 0A",
				"84 02 1122",
				"A5 04", "50 02 4142",
			),
			expectedLines: []string{
				"6F (10):",
				"  84 (2): 1122",
				"  A5 (4):",
				`    50 (2): 4142 ("AB")`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(tt.data)
			if err != nil {
				t.Fatalf("Describe failed: %v", err)
			}
			if diff := cmp.Diff(tt.expectedLines, strings.Split(got, "\n")); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMakeSafeASCII(t *testing.T) {
	input := []byte{0x41, 0x42, 0x00, 0x1F, 0x7F, 0x43} // AB, null, US, DEL, C
	want := "AB...C"                                    // 0x7F (127) is > 126, so it becomes dot

	got := MakeSafeASCII(input)
	if got != want {
		t.Errorf("MakeSafeASCII() = %q, want %q", got, want)
	}
}
