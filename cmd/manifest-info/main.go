package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/manifest-info/internal/app"
	"github.com/quantmind-br/manifest-info/internal/config"
	"github.com/quantmind-br/manifest-info/internal/utils"
	"github.com/quantmind-br/manifest-info/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	// Subcommands that operate on a manifest, built once at startup
	registry = app.DefaultRegistry()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manifest-info <manifest-file> <command>",
	Short: "Inspect a browser extension manifest",
	Long: `manifest-info reads a browser extension manifest.json and reports
information about it for build and packaging scripts.

Commands:
` + commandList(registry),
	Example:       "  manifest-info manifest.json src",
	Version:       version.Full(),
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("locales-root", config.DefaultLocalesRoot, "Directory the locale pattern is matched in")
	rootCmd.PersistentFlags().String("locales-pattern", config.DefaultLocalesPattern, "Glob matching locale message files")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")

	_ = viper.BindPFlag("locales.root", rootCmd.PersistentFlags().Lookup("locales-root"))
	_ = viper.BindPFlag("locales.pattern", rootCmd.PersistentFlags().Lookup("locales-pattern"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runner, err := app.NewRunner(app.RunnerOptions{
		Config:   cfg,
		Registry: registry,
		Verbose:  verbose,
		Stdout:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return runner.Run(ctx, args[0], args[1])
}

// commandList renders the registry for the help text
func commandList(r *app.Registry) string {
	var b strings.Builder
	for _, c := range r.Commands() {
		fmt.Fprintf(&b, "  %-8s %s\n", c.Name, c.Short)
	}
	return b.String()
}
