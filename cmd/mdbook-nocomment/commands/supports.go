package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/pkg/preprocessor"
)

// ErrUnsupportedRenderer makes the process exit 1 without printing anything,
// which is how mdbook learns a renderer is not supported.
var ErrUnsupportedRenderer = errors.New("renderer not supported")

var supportsCmd = &cobra.Command{
	Use:   "supports <renderer>",
	Short: "Check whether a renderer is supported by this preprocessor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return supports(preprocessor.New(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}

func supports(p preprocessor.Preprocessor, renderer string) error {
	if !p.SupportsRenderer(renderer) {
		logger.Debug("renderer not supported", "renderer", renderer)
		return ErrUnsupportedRenderer
	}
	return nil
}
