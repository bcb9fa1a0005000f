package main

import (
	"fmt"

	"github.com/gregLibert/apdu/pkg/bytetools"
	"github.com/gregLibert/apdu/pkg/iso7816"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type encodeOptions struct {
	CLA, INS, P1, P2 uint8
	Data             string
	Ne               int
	Extended         bool
}

func newEncodeCmd(root *rootOptions) *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a command APDU and print it as hex",
		Long: `Build a command APDU from its header, data and expected response length.
Extended length encoding is used automatically when Nc > 255 or Ne > 256.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := bytetools.ParseHex(opts.Data)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}

			c, err := iso7816.NewCommand(opts.CLA, opts.INS, opts.P1, opts.P2, data, opts.Ne)
			if err != nil {
				return err
			}

			raw := c.Encode(opts.Extended)
			root.logger.Debug("->",
				zap.String("apdu", bytetools.ToHexString(raw)),
				zap.Bool("extended", opts.Extended || c.IsExtended()),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), bytetools.ToHexString(raw))
			return err
		},
	}

	f := cmd.Flags()
	f.Uint8Var(&opts.CLA, "cla", 0x00, "class byte (CLA)")
	f.Uint8Var(&opts.INS, "ins", 0x00, "instruction byte (INS)")
	f.Uint8Var(&opts.P1, "p1", 0x00, "parameter 1")
	f.Uint8Var(&opts.P2, "p2", 0x00, "parameter 2")
	f.StringVar(&opts.Data, "data", "", "command data as hex")
	f.IntVar(&opts.Ne, "ne", 0, "maximum expected response length (0-65536)")
	f.BoolVar(&opts.Extended, "extended", false, "force extended length encoding")
	_ = cmd.MarkFlagRequired("ins")

	return cmd
}
