// Package cmd provides the CLI commands for unties.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"unties/adapters/unitfile"
	"unties/core/catalog"
	"unties/core/output"
	"unties/core/registry"
	"unties/internal/config"
	"unties/internal/logging"
)

// Version is the CLI version, overridden at link time
var Version = "0.1.0"

// EnvPrefix prefixes the environment variables read by the CLI,
// e.g. UNTIES_OUTPUT_FORMAT
const EnvPrefix = "UNTIES"

// app is the state shared by the subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	reg    *registry.Registry
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "unties",
		Short: "Evaluate and convert physical quantities",
		Long: `unties evaluates expressions over physical quantities with units and
converts them between compatible units.

Exponents are written with pow(), and binary minus needs surrounding
spaces because unit names may contain dashes.

Examples:
  unties eval "60 * mph" --to "km / hr"
  unties eval "pow(3 * m, 2)"
  unties eval --let "d=100 * m" --let "t=9.58 * s" "d / t"
  unties convert "1 * atm" psi
  unties units --kind pressure
  unties constants --format json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.unties.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringP("format", "f", "cli", "output format (cli, json, markdown)")
	flags.IntP("precision", "p", -1, "significant digits to show (-1 for shortest exact)")
	flags.StringSlice("units-file", nil, "HCL unit files or directories to load")
	flags.Bool("no-standard", false, "do not load the built-in SI catalog")

	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.precision", flags.Lookup("precision"))
	_ = a.v.BindPFlag("catalog.unit_files", flags.Lookup("units-file"))
	_ = a.v.BindPFlag("catalog.no_standard", flags.Lookup("no-standard"))

	rootCmd.AddCommand(
		newEvalCmd(a),
		newConvertCmd(a),
		newUnitsCmd(a),
		newConstantsCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

// initConfig loads the config file, then lets UNTIES_* environment
// variables and explicit flags override it
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	path := a.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if a.v.IsSet("output.format") {
		cfg.Output.Format = a.v.GetString("output.format")
	}
	if a.v.IsSet("output.precision") {
		cfg.Output.Precision = a.v.GetInt("output.precision")
	}
	if a.v.IsSet("catalog.unit_files") {
		cfg.Catalog.UnitFiles = append(cfg.Catalog.UnitFiles, a.v.GetStringSlice("catalog.unit_files")...)
	}
	if a.v.GetBool("catalog.no_standard") {
		cfg.Catalog.Standard = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)
	a.cfg = cfg

	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}
	a.logger = logging.Named("cli")
	return nil
}

// registry builds the unit registry on first use
func (a *app) registry() (*registry.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}

	reg, err := a.load(a.cfg.Catalog.UnitFiles...)
	if err != nil {
		return nil, err
	}
	reg.Freeze()
	a.reg = reg
	return reg, nil
}

// load returns an unfrozen registry holding the configured catalog and the
// given unit files
func (a *app) load(files ...string) (*registry.Registry, error) {
	reg := registry.New(registry.WithLogger(logging.Named("registry")))
	if a.cfg.Catalog.Standard {
		if err := catalog.Load(reg, catalog.WithLogger(logging.Named("catalog"))); err != nil {
			return nil, err
		}
	}
	if len(files) > 0 {
		loader := unitfile.NewLoader(unitfile.WithLogger(logging.Named("unitfile")))
		if _, err := loader.Load(reg, files...); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (a *app) formatter() (output.Formatter, error) {
	if a.cfg.Output.Format == string(output.FormatJSON) {
		return &output.JSONFormatter{Indent: a.cfg.Output.Indent}, nil
	}
	return output.NewFormatter(a.cfg.Output.Format)
}

func (a *app) render(w io.Writer, results ...*output.Result) error {
	f, err := a.formatter()
	if err != nil {
		return err
	}
	return f.Render(w, results...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "unties version %s\n", Version)
		},
	}
}
