package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bigint"
	"github.com/calebcase/bigint/control"
	"github.com/calebcase/bigint/integer"
)

var schema = integer.Schema{
	Signed: true,
}

var encodeCmd = &cobra.Command{
	Use:   "encode N...",
	Short: "Encode integers as BSV data blocks and print the bytes in hex",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := &bytes.Buffer{}
		enc := integer.NewEncoder(schema, control.NewEncoder(buf))

		for _, arg := range args {
			x, err := bigint.Parse(arg)
			if err != nil {
				return err
			}

			err = enc.EncodeInt(x)
			if err != nil {
				return err
			}

			logger.Debug("encoded", zap.String("value", x.Dec()), zap.Int("total", buf.Len()))
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

		return err
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Decode hex encoded BSV data blocks and print each integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}

		cd := control.NewDecoder(bytes.NewReader(data))
		dec := integer.NewDecoder(schema, cd)

		for cd.Consumed() < uint64(len(data)) {
			x, _, err := dec.DecodeInt()
			if err != nil {
				return err
			}

			err = printResult(cmd, x)
			if err != nil {
				return err
			}
		}

		return nil
	},
}
