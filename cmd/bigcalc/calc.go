package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bigint"
)

var calcCmd = &cobra.Command{
	Use:   "calc A OP B",
	Short: "Evaluate A OP B where OP is one of + - * (or x) / % << >> cmp",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := evaluate(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		return printResult(cmd, result)
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex N",
	Short: "Print N in hexadecimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := bigint.Parse(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), x.Hex())

		return err
	},
}

var decCmd = &cobra.Command{
	Use:   "dec N",
	Short: "Print N in decimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := bigint.Parse(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), x.Dec())

		return err
	},
}

// evaluate applies op to the operands. Operands are decimal or 0x-prefixed
// hexadecimal; shift counts are plain non-negative integers.
func evaluate(a, op, b string) (result bigint.Int, err error) {
	x, err := bigint.Parse(a)
	if err != nil {
		return bigint.Int{}, err
	}

	logger.Debug("evaluate", zap.String("lhs", x.Hex()), zap.String("op", op), zap.String("rhs", b))

	switch op {
	case "<<", ">>":
		count, err := shiftCount(b)
		if err != nil {
			return bigint.Int{}, err
		}

		if op == "<<" {
			return x.Lsh(count)
		}

		return x.Rsh(count)
	}

	y, err := bigint.Parse(b)
	if err != nil {
		return bigint.Int{}, err
	}

	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*", "x":
		return x.Mul(y), nil
	case "/":
		return x.Div(y)
	case "%":
		_, r, err := x.DivMod(y)
		return r, err
	case "cmp":
		return bigint.NewInt64(int64(x.Cmp(y))), nil
	}

	return bigint.Int{}, Error.New("unknown operator %q", op)
}

func shiftCount(s string) (uint, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Error.New("invalid shift count %q: %v", s, err)
	}

	count, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, Error.New("invalid shift count %q: %v", s, err)
	}

	return count, nil
}

func printResult(cmd *cobra.Command, x bigint.Int) error {
	asHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return err
	}

	logger.Debug("result", zap.Int("words", x.WordCount()), zap.Bool("negative", x.IsNegative()))

	out := x.Dec()
	if asHex {
		out = x.Hex()
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}
