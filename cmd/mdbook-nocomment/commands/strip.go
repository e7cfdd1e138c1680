package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/internal/output"
	"github.com/jmylchreest/mdbook-nocomment/pkg/cleaner"
	"github.com/jmylchreest/mdbook-nocomment/pkg/nocomment"
	"github.com/jmylchreest/mdbook-nocomment/pkg/preprocessor"
)

// stdinName labels standard input in reports.
const stdinName = "-"

// fileReport is one record of the --report output.
type fileReport struct {
	File        string `json:"file" yaml:"file"`
	Comments    int    `json:"comments_removed" yaml:"comments_removed"`
	InputBytes  int    `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int    `json:"output_bytes" yaml:"output_bytes"`
	Changed     bool   `json:"changed" yaml:"changed"`
}

var stripCmd = &cobra.Command{
	Use:   "strip [file...]",
	Short: "Strip HTML comments from markdown files",
	Long: `Strip HTML comments from markdown files outside of an mdbook build.

With no files, reads standard input. Cleaned content goes to standard
output unless --output or --in-place is given.

Examples:
  # Preview a chapter without comments
  mdbook-nocomment strip src/intro.md

  # Clean every chapter in place and write a report
  mdbook-nocomment strip --in-place --report report.yaml --report-format yaml src/*.md

  # Drop unterminated comments instead of keeping them
  cat draft.md | mdbook-nocomment strip --unterminated discard`,
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)

	flags := stripCmd.Flags()
	flags.String("unterminated", nocomment.DefaultPolicy.String(), "unterminated comment policy: pass-through, discard")
	flags.StringP("output", "o", "", "output file (single input only)")
	flags.BoolP("in-place", "i", false, "rewrite input files")
	flags.String("report", "", "write a per-file report to this file")
	flags.String("report-format", "json", "report format: json, jsonl, yaml")
	flags.Bool("stats", false, "print a summary to stderr")

	stripCmd.MarkFlagsMutuallyExclusive("output", "in-place")
}

func runStrip(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	outputPath, _ := flags.GetString("output")
	inPlace, _ := flags.GetBool("in-place")
	reportPath, _ := flags.GetString("report")
	reportFormat, _ := flags.GetString("report-format")
	showStats, _ := flags.GetBool("stats")

	policyName, _ := flags.GetString("unterminated")
	policy, err := nocomment.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	if outputPath != "" && len(args) > 1 {
		return errors.New("--output accepts a single input file")
	}
	if inPlace && len(args) == 0 {
		return errors.New("--in-place needs at least one file")
	}

	var report output.Writer
	if reportPath != "" {
		format, err := output.ParseFormat(reportFormat)
		if err != nil {
			return err
		}
		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("creating report %s: %w", reportPath, err)
		}
		defer func() { _ = f.Close() }()

		if report, err = output.NewWriter(f, format); err != nil {
			return err
		}
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	c := cleaner.NewComments(policy)
	stats := preprocessor.Stats{}
	start := time.Now()

	for _, name := range args {
		input, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}

		res := c.CleanWithStats(input)
		logger.Debug("file cleaned", "file", name, "removed", res.Removed, "changed", res.Changed)

		if err := writeResult(cmd.OutOrStdout(), name, outputPath, inPlace, res); err != nil {
			return err
		}

		stats.Chapters++
		stats.InputBytes += len(input)
		stats.OutputBytes += len(res.Content)
		stats.CommentsRemoved += res.Removed
		if res.Changed {
			stats.ChaptersChanged++
		}

		if report != nil {
			if err := report.Write(fileReport{
				File:        name,
				Comments:    res.Removed,
				InputBytes:  len(input),
				OutputBytes: len(res.Content),
				Changed:     res.Changed,
			}); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		}
	}
	stats.Duration = time.Since(start)

	if report != nil {
		if err := report.Close(); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if showStats {
		fmt.Fprint(cmd.ErrOrStderr(), stats.String())
	}
	return nil
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", name, err)
	}
	return string(data), nil
}

func writeResult(stdout io.Writer, name, outputPath string, inPlace bool, res *cleaner.Result) error {
	switch {
	case inPlace:
		if !res.Changed {
			return nil
		}
		info, err := os.Stat(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(name, []byte(res.Content), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing file %s: %w", name, err)
		}
		return nil
	case outputPath != "":
		if err := os.WriteFile(outputPath, []byte(res.Content), 0644); err != nil {
			return fmt.Errorf("writing output file %s: %w", outputPath, err)
		}
		return nil
	default:
		_, err := io.WriteString(stdout, res.Content)
		return err
	}
}
