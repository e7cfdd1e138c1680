package preprocessor

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mdbook-nocomment/pkg/nocomment"
)

// EnvPrefix prefixes environment variables that override book.toml options,
// e.g. MDBOOK_NOCOMMENT_UNTERMINATED=discard.
const EnvPrefix = "MDBOOK_NOCOMMENT"

// Options configures the preprocessor. They are read from the
// [preprocessor.nocomment] table of book.toml.
type Options struct {
	// Enable turns stripping on or off without removing the table.
	Enable bool `mapstructure:"enable"`

	// Unterminated selects what happens to a comment opener with no closer.
	Unterminated string `mapstructure:"unterminated" validate:"oneof=pass-through passthrough discard"`

	// Concurrency caps the chapters cleaned in parallel. 0 uses GOMAXPROCS.
	Concurrency int `mapstructure:"concurrency" validate:"gte=0,lte=1024"`
}

// DefaultOptions returns the options used when book.toml sets nothing.
func DefaultOptions() Options {
	return Options{
		Enable:       true,
		Unterminated: nocomment.DefaultPolicy.String(),
		Concurrency:  0,
	}
}

// Policy returns the parsed unterminated comment policy.
func (o Options) Policy() (nocomment.Policy, error) {
	return nocomment.ParsePolicy(o.Unterminated)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadOptions decodes and validates a [preprocessor.<name>] table.
// Keys mdbook itself understands (command, renderers, before, after) are
// ignored. Environment variables with EnvPrefix override the table.
func LoadOptions(table map[string]any) (Options, error) {
	v := viper.New()

	defaults := DefaultOptions()
	v.SetDefault("enable", defaults.Enable)
	v.SetDefault("unterminated", defaults.Unterminated)
	v.SetDefault("concurrency", defaults.Concurrency)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if table != nil {
		if err := v.MergeConfigMap(table); err != nil {
			return Options{}, fmt.Errorf("reading options: %w", err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	opts.Unterminated = strings.ToLower(strings.TrimSpace(opts.Unterminated))

	if err := validate.Struct(opts); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}
