// Command apdu encodes and decodes ISO/IEC 7816-4 APDUs from the command line.
//
//	apdu encode --cla 0x00 --ins 0xA4 --p1 0x04 --data A0000000031010 --ne 256
//	apdu decode-command 00A4040007A000000003101000
//	apdu decode-response --tlv 6F0A84021122A50450024142 9000
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
