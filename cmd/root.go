package cmd

import (
	"io"
	"os"

	"github.com/Manu343726/sizeof/cmd/tools"
	"github.com/Manu343726/sizeof/pkg/config"
	"github.com/Manu343726/sizeof/pkg/logging"
	"github.com/Manu343726/sizeof/pkg/memory"
	"github.com/Manu343726/sizeof/pkg/report"
	"github.com/Manu343726/sizeof/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logFile io.WriteCloser

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sizeof",
	Short: "Prints the storage size of a few sample variables",
	Long: `Sizeof shows how the storage size of a variable's type is computed.

Without subcommands it prints the size in bytes of four sample variables:
an integer, a double precision float, a character and a record made of an
integer and a character field. The record size includes the padding the
platform inserts to satisfy its alignment requirement.

Sizes are computed either with the builtin size query (--method sizeof) or
by measuring the distance between two consecutive array elements
(--method stride). Both methods always agree.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd)
	cobra.OnFinalize(closeLogFile)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file. If not specified, only flags and defaults are used.")
	flags.String("method", string(memory.MethodSizeof), "size computation method: "+utils.FormatSlice(memory.Methods, ", "))
	flags.String("format", string(report.FormatText), "report format: "+utils.FormatSlice(report.Formats, ", "))
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-file", "", "also write JSON logs to this file")

	bindConfig()
}

// bindConfig binds the persistent flags to their config keys
func bindConfig() {
	flags := RootCmd.PersistentFlags()

	cobra.CheckErr(viper.BindPFlag(config.KeyMethod, flags.Lookup("method")))
	cobra.CheckErr(viper.BindPFlag(config.KeyFormat, flags.Lookup("format")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogFile, flags.Lookup("log-file")))

	config.SetDefaults(viper.GetViper())
}

// setup reads the config file, if any, and installs the logger in the command context.
func setup(cmd *cobra.Command, args []string) error {
	used, err := config.ReadFile(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	settings := logging.Settings{
		Level:   cfg.LogLevel(),
		Console: cmd.ErrOrStderr(),
	}

	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}

		logFile = file
		settings.File = file
	}

	logger := logging.New(settings)
	cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logger))

	if used != "" {
		logger.Info("using config file", "path", used)
	}

	logger.Debug("configuration loaded", "method", cfg.Method, "format", cfg.Format, "log_level", cfg.Log.Level)

	return nil
}

// closeLogFile runs after every execution, including failed ones
func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	samples := report.Samples(cfg.SizeMethod())

	for _, sample := range samples {
		logger.Debug("computed size", "label", sample.Label, "type", sample.Type, "size", sample.Size, "method", cfg.SizeMethod())
	}

	return report.WriteFormat(cmd.OutOrStdout(), cfg.ReportFormat(), samples)
}
