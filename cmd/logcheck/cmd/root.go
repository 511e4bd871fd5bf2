package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	level   string
	backend string
	tag     string
	burst   int
)

var rootCmd = &cobra.Command{
	Use:   "logcheck",
	Short: "Exercise the Tessera logging facade",
	Long: `logcheck drives the Tessera logging facade against a real backend so
operators can verify log routing before deploying an appliance.

It emits one message per priority, demonstrates rate limiting, error
code annotation, and backtrace capture on the configured backend.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "logging config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&level, "level", "", "override log level (emergency..debug)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "override backend (stderr, syslog, kmsg)")
	rootCmd.PersistentFlags().StringVar(&tag, "tag", "", "override syslog/kmsg tag")
	rootCmd.PersistentFlags().IntVar(&burst, "burst", 0, "override rate limiter burst")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
