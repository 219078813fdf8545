package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/0xRadioAc7iv/go-kvlog/cmd/kvlog/internal/config"
	"github.com/0xRadioAc7iv/go-kvlog/core"
)

var (
	// Global flags
	cfgFile  string
	storeDir string
	verbose  bool

	globalConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kvlog",
	Short: "A log-structured key-value store",
	Long: `kvlog is a persistent key-value store backed by an append-only
command log in a single directory. The log is replayed on startup to
rebuild the in-memory index, and rewritten in place when stale records
accumulate.

Examples:
  kvlog --dir /var/lib/kvlog set greeting "hello world"
  kvlog --dir /var/lib/kvlog get greeting
  kvlog shell
`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns its error for main to map to
// an exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVarP(&storeDir, "dir", "d", "", "store directory (default from config, else \".\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(shellCmd)
}

func initConfig() {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		slog.Warn("falling back to default config", "error", err)
		globalConfig = config.Default()
	}

	logLevel := slog.LevelInfo
	if verbose || globalConfig.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// resolveDir picks the store directory: flag first, then config file.
func resolveDir() string {
	if storeDir != "" {
		return storeDir
	}
	return globalConfig.Dir
}

// openStore opens the store for one command invocation.
func openStore() (*core.Store, error) {
	dir := resolveDir()
	slog.Debug("opening store", "dir", dir)
	return core.Open(dir)
}
