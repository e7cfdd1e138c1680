// Package commands implements the CLI commands for mdbook-nocomment.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/pkg/book"
	"github.com/jmylchreest/mdbook-nocomment/pkg/preprocessor"
)

var rootCmd = &cobra.Command{
	Use:   "mdbook-nocomment",
	Short: "A simple mdbook preprocessor that cleans up html comments",
	Long: `mdbook-nocomment removes HTML comments (<!-- ... -->) from every chapter
before mdbook renders the book.

Enable it in book.toml:

  [preprocessor.nocomment]

Options:
  enable = true                  # set false to skip stripping
  unterminated = "pass-through"  # or "discard"
  concurrency = 0                # chapters cleaned in parallel, 0 = all CPUs

mdbook runs this command with the book on stdin and reads the processed
book from stdout.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPreprocess,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.mdbook-nocomment.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".mdbook-nocomment")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(preprocessor.EnvPrefix)
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runPreprocess(cmd *cobra.Command, _ []string) error {
	return preprocess(preprocessor.New(), cmd.InOrStdin(), cmd.OutOrStdout())
}

// preprocess reads [context, book] from in and writes the processed book to out.
func preprocess(p preprocessor.Preprocessor, in io.Reader, out io.Writer) error {
	ctx, b, err := book.ParseInput(in)
	if err != nil {
		return err
	}
	logger.Debug("book received", "root", ctx.Root, "renderer", ctx.Renderer, "mdbook", ctx.MdbookVersion)

	if _, err := preprocessor.CheckHostVersion(p, ctx); err != nil {
		return err
	}

	processed, err := p.Run(ctx, b)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}

	w := bufio.NewWriter(out)
	if _, err := processed.WriteTo(w); err != nil {
		return fmt.Errorf("writing book: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing book: %w", err)
	}
	return w.Flush()
}
