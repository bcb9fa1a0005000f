/*
Package iso7816 encodes and decodes APDUs (Application Protocol Data Units) as defined by ISO/IEC 7816-3 and 7816-4.

It is a pure codec: it never talks to a card. A transport hands it raw bytes and receives raw bytes back.

# Command APDU (C-APDU)

A command consists of a mandatory 4-byte header (CLA INS P1 P2) and an optional body:

	CLA INS P1 P2 [Lc] [Data] [Le]

ISO 7816-3 distinguishes four cases:
  - Case 1: No Data, No Response (Header only).
  - Case 2: No Data, Response Expected (Header + Le).
  - Case 3: Data Present, No Response (Header + Lc + Data).
  - Case 4: Data Present, Response Expected (Header + Lc + Data + Le).

Lc and Le use either Short encoding (1 byte, Le 00 meaning 256) or Extended encoding
(00 marker followed by 2 bytes, Le 0000 meaning 65536). Extended encoding is selected
automatically when Nc > 255 or Ne > 256, or on request with Encode(true). When both
fields are extended, only Lc carries the 00 marker.

ParseCommand reverses the process and detects which encoding was used. Inputs that do not
match exactly one layout are rejected with an error wrapping ErrMalformed.

# Response APDU (R-APDU)

A response is an optional data field followed by the two status bytes SW1 SW2:

	[Data] SW1 SW2

The only status this package interprets is 9000 (IsSuccessful).

# Usage

	cmd, err := iso7816.NewCommand(0x00, 0xA4, 0x04, 0x00, aid, 256)
	if err != nil {
	    log.Fatal(err)
	}

	raw, err := card.Transmit(cmd.Bytes())
	if err != nil {
	    log.Fatal(err)
	}

	resp, err := iso7816.ParseResponse(raw)
	if err != nil {
	    log.Fatal(err)
	}
	if resp.IsSuccessful() {
	    fmt.Printf("FCI: %X\n", resp.Data())
	}

Command and Response values are immutable and safe to share between goroutines.
*/
package iso7816
