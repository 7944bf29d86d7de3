package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logsummary/internal/config"
	"github.com/atikulmunna/logsummary/internal/logging"
)

const usageLine = "Usage: logsummary <logfile1> [<logfile2> ...]"

// errUsage signals that no input paths were given; usage has already been printed.
var errUsage = errors.New("no log files given")

// rootCmd is the only command: summarize the given log files.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "logsummary <logfile1> [<logfile2> ...]",
		Short: "Summarize ERROR/WARNING/CRITICAL/INFO lines in log files",
		Long: `logsummary scans one or more text log files, counts lines by severity
keyword (ERROR, WARNING, CRITICAL, INFO), and keeps the first ERROR or
CRITICAL message of each file as a sample.

It prints a summary table and writes a timestamped CSV report to
./reports/log_summary_<YYYYMMDD_HHMMSS>.csv.

Examples:
  logsummary /var/log/app.log
  logsummary app.log worker.log
  logsummary --glob "/var/log/**/*.log"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return errUsage
			}

			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)

			return summarize(cmd.OutOrStdout(), cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.logsummary.yaml or $HOME/.logsummary.yaml)")
	flags.String("report-dir", "reports", "directory for CSV reports")
	flags.Bool("glob", false, "expand glob patterns (including **) in arguments")
	flags.String("log-level", "warn", "stderr diagnostics level: debug, info, warn, error")

	cobra.CheckErr(v.BindPFlag(config.KeyReportDir, flags.Lookup("report-dir")))
	cobra.CheckErr(v.BindPFlag(config.KeyGlob, flags.Lookup("glob")))
	cobra.CheckErr(v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "logsummary:", err)
		}
		os.Exit(1)
	}
}
