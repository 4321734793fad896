// Package cmd - eval and convert commands
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unties/core/expression"
	"unties/core/output"
	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		to   string
		lets []string
	)

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate quantity expressions",
		Long: `Evaluate one or more expressions over the registered units and constants.

Supported: numbers, unit and constant names, + - * /, parentheses, and
the functions pow, sqrt, cbrt, abs and to. The constant pi is built in.

Examples:
  unties eval "3 * ft + 2 * inch"
  unties eval "to(c, mi / hr)"
  unties eval --to J "0.5 * 2 * kg * pow(10 * m / s, 2)"
  unties eval --let "r=2 * cm" "pi * pow(r, 2)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			ctx := expression.NewContext(reg)
			for _, let := range lets {
				name, src, ok := strings.Cut(let, "=")
				if !ok {
					return uerrors.Input(fmt.Sprintf("--let %q: want name=expression", let))
				}
				if _, err := ctx.Define(strings.TrimSpace(name), src); err != nil {
					return fmt.Errorf("--let %s: %w", strings.TrimSpace(name), err)
				}
			}

			results := make([]*output.Result, 0, len(args))
			for _, src := range args {
				q, err := a.evaluate(ctx, src, to)
				if err != nil {
					return err
				}
				results = append(results, output.NewResult(src, reg.Describe(q), a.cfg.Output.Precision))
			}
			return a.render(cmd.OutOrStdout(), results...)
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "convert results to these units")
	cmd.Flags().StringArrayVar(&lets, "let", nil, "bind name=expression before evaluating (repeatable)")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <expression> <units>",
		Short: "Convert a quantity to other units",
		Long: `Convert a quantity to compatible units.

Examples:
  unties convert "100 * km / hr" mph
  unties convert "1 * atm" "lbf / pow(inch, 2)"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			q, err := a.evaluate(expression.NewContext(reg), args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), output.NewResult(args[0], reg.Describe(q), a.cfg.Output.Precision))
		},
	}
}

// evaluate evaluates src in r and, when to is set, converts the result
func (a *app) evaluate(r expression.Resolver, src, to string) (quantity.Quantity, error) {
	q, err := expression.Eval(src, r)
	if err != nil {
		return quantity.Quantity{}, err
	}
	a.logger.Debug("evaluated", zap.String("expression", src), zap.Stringer("value", q))
	if to == "" {
		return q, nil
	}

	target, err := expression.Eval(to, r)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("target units: %w", err)
	}
	return expression.Convert(q, target)
}
