package main

import (
	"fmt"
	"strings"

	"github.com/gregLibert/apdu/pkg/bytetools"
	"github.com/gregLibert/apdu/pkg/iso7816"
	"github.com/gregLibert/apdu/pkg/tlv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseHexArgs joins the positional arguments so that "00 A4 04 00" works unquoted.
func parseHexArgs(args []string) ([]byte, error) {
	return bytetools.ParseHex(strings.Join(args, ""))
}

func newDecodeCommandCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode-command HEX...",
		Short: "Decode a command APDU (C-APDU)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			root.logger.Debug("<-", zap.String("apdu", bytetools.ToHexString(raw)))

			c, framing, err := iso7816.DecodeCommand(raw)
			if err != nil {
				return fmt.Errorf("decoding command: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c)
			fmt.Fprintf(out, "Framing:   %s\n", framing)
			fmt.Fprintf(out, "Canonical: %s\n", bytetools.ToHexString(c.Bytes()))
			return nil
		},
	}
}

func newDecodeResponseCmd(root *rootOptions) *cobra.Command {
	var withTLV bool

	cmd := &cobra.Command{
		Use:   "decode-response HEX...",
		Short: "Decode a response APDU (R-APDU)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			root.logger.Debug("<-", zap.String("apdu", bytetools.ToHexString(raw)))

			r, err := iso7816.ParseResponse(raw)
			if err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}

			out := cmd.OutOrStdout()
			data := r.Data()
			fmt.Fprintln(out, r)
			fmt.Fprintf(out, "Successful: %t\n", r.IsSuccessful())
			if len(data) > 0 {
				fmt.Fprintf(out, "ASCII:      %s\n", tlv.MakeSafeASCII(data))
			}

			if !withTLV || len(data) == 0 {
				return nil
			}

			tree, err := tlv.Describe(data)
			if err != nil {
				// Not every payload is BER-TLV; the hex dump above is still valid.
				root.logger.Warn("response data is not BER-TLV", zap.Error(err))
				return nil
			}
			fmt.Fprintln(out, "TLV:")
			fmt.Fprintln(out, tree)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTLV, "tlv", false, "render the data field as a BER-TLV tree")
	return cmd
}
