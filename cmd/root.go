package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "zxtm-lookup",
	Short: "Find what a load balancer snapshot routes to a backend node",
	Long: `zxtm-lookup reads a JSON snapshot of one or more ZXTM load balancer
instances and answers which pools, virtual servers and traffic IP groups
reach a given backend node.

Example: zxtm-lookup lookup 10.0.0.1`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: zxtm-lookup.yml)")
	rootCmd.PersistentFlags().StringP("snapshot", "s", "", "snapshot JSON file (default: zxtm.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details while indexing")

	_ = viper.BindPFlag("snapshot", rootCmd.PersistentFlags().Lookup("snapshot"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zxtm-lookup")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("zxtm")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// newLogger returns the diagnostics logger on stderr, passing entries at
// floor and above. --verbose lowers the floor to debug.
func newLogger(floor level.Option) log.Logger {
	return newLoggerTo(os.Stderr, floor)
}

func newLoggerTo(w io.Writer, floor level.Option) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, floor)
}
