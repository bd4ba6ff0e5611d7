package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeBeaton/macos-boot-helper/cmd/nvramctl/logger"
	"github.com/MikeBeaton/macos-boot-helper/nvram"
	"github.com/MikeBeaton/macos-boot-helper/nvram/efivarfs"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	noColor    bool
	debugLog   bool
	nsFlag     string
	configPath string
	storeDir   string
)

var rootCmd = &cobra.Command{
	Use:   "nvramctl",
	Short: "Inspect and mutate firmware NVRAM variables",
	Long: `nvramctl lists, reads, sets and toggles variables in the platform
NVRAM store. Values are rendered as reversible percent-escaped text, so any
listed value can be fed back in unambiguously.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(logger.Options{
			Enabled: debugLog,
			Level:   slog.LevelDebug,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		}
		logger.L.Debug("starting", "command", cmd.Name(), "args", args)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write a debug log file")
	rootCmd.PersistentFlags().
		StringVarP(&nsFlag, "namespace", "n", nvram.NamespaceApple.String(), "Variable namespace GUID")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "YAML config with extra wide-text namespaces")
	rootCmd.PersistentFlags().
		StringVar(&storeDir, "efivarfs", efivarfs.DefaultDir, "efivarfs mount point")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore returns the variable store all subcommands operate on.
func openStore() *efivarfs.Store {
	return efivarfs.NewAt(storeDir)
}

// namespaceArg resolves the --namespace flag.
func namespaceArg() (nvram.Namespace, error) {
	ns, err := nvram.ParseNamespace(nsFlag)
	if err != nil {
		return nvram.Namespace{}, fmt.Errorf("invalid namespace %q: %w", nsFlag, err)
	}
	return ns, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, styled(errorStyle, "Error: ")+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
