package preprocessor

import (
	"testing"

	"github.com/jmylchreest/mdbook-nocomment/pkg/nocomment"
)

func TestLoadOptions_Defaults(t *testing.T) {
	opts, err := LoadOptions(nil)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("LoadOptions(nil) = %+v, want %+v", opts, DefaultOptions())
	}

	policy, err := opts.Policy()
	if err != nil {
		t.Fatalf("Policy() error = %v", err)
	}
	if policy != nocomment.PassThrough {
		t.Errorf("Policy() = %v, want pass-through", policy)
	}
}

func TestLoadOptions_FromTable(t *testing.T) {
	// Values arrive from mdbook as decoded JSON: numbers are float64.
	table := map[string]any{
		"command":      "mdbook-nocomment",
		"renderers":    []any{"html"},
		"enable":       false,
		"unterminated": "discard",
		"concurrency":  float64(4),
	}

	opts, err := LoadOptions(table)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts.Enable {
		t.Error("Enable = true, want false")
	}
	if opts.Unterminated != "discard" {
		t.Errorf("Unterminated = %q, want discard", opts.Unterminated)
	}
	if opts.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", opts.Concurrency)
	}
}

func TestLoadOptions_EnvOverride(t *testing.T) {
	t.Setenv("MDBOOK_NOCOMMENT_UNTERMINATED", "discard")

	opts, err := LoadOptions(map[string]any{"unterminated": "pass-through"})
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts.Unterminated != "discard" {
		t.Errorf("Unterminated = %q, want env override discard", opts.Unterminated)
	}
}

func TestLoadOptions_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		table map[string]any
	}{
		{"unknown_policy", map[string]any{"unterminated": "truncate"}},
		{"negative_concurrency", map[string]any{"concurrency": float64(-1)}},
		{"huge_concurrency", map[string]any{"concurrency": float64(100000)}},
		{"enable_not_bool", map[string]any{"enable": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOptions(tt.table); err == nil {
				t.Errorf("LoadOptions(%v) expected error", tt.table)
			}
		})
	}
}
