// Package cmd - catalog listing commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unties/adapters/unitfile"
	"unties/core/output"
	"unties/internal/logging"
)

func newUnitsCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units by quantity kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			table := output.NewUnitTable(reg, kind)
			if kind != "" && len(table.Groups) == 0 {
				return fmt.Errorf("no units of kind %q", kind)
			}
			f, err := a.formatter()
			if err != nil {
				return err
			}
			return f.RenderUnits(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list units of this kind, e.g. length")
	return cmd
}

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List physical constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			symbols := reg.Constants()
			results := make([]*output.Result, 0, len(symbols))
			for _, symbol := range symbols {
				q, _ := reg.ConstantValue(symbol)
				results = append(results, output.NewResult(symbol, q, a.cfg.Output.Precision))
			}
			return a.render(cmd.OutOrStdout(), results...)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <unit-file>...",
		Short: "Validate HCL unit files against the catalog",
		Long: `Load unit files on top of the configured catalog and report what they define.

Examples:
  unties check units/
  unties check --no-standard information.hcl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.load(a.cfg.Catalog.UnitFiles...)
			if err != nil {
				return err
			}

			loader := unitfile.NewLoader(unitfile.WithLogger(logging.Named("unitfile")))
			summary, err := loader.Load(reg, args...)
			if err != nil {
				return err
			}

			a.logger.Debug("unit files valid", zap.Strings("files", summary.Files))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d files, %d prefixes, %d units, %d constants, %d kinds\n",
				len(summary.Files), summary.Prefixes, summary.Units, summary.Constants, summary.Kinds)
			return nil
		},
	}
}
