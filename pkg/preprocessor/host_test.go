package preprocessor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blang/semver/v4"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/internal/version"
	"github.com/jmylchreest/mdbook-nocomment/pkg/book"
)

func TestCompatibleRange(t *testing.T) {
	tests := []struct {
		built string
		host  string
		want  bool
	}{
		{"0.4.40", "0.4.40", true},
		{"0.4.40", "0.4.52", true},
		{"0.4.40", "0.4.39", false},
		{"0.4.40", "0.5.0", false},
		{"1.2.0", "1.9.3", true},
		{"1.2.0", "2.0.0", false},
		{"0.0.3", "0.0.3", true},
		{"0.0.3", "0.0.4", false},
	}

	for _, tt := range tests {
		r, err := CompatibleRange(tt.built)
		if err != nil {
			t.Fatalf("CompatibleRange(%q) error = %v", tt.built, err)
		}
		host := semver.MustParse(tt.host)
		if got := r(host); got != tt.want {
			t.Errorf("CompatibleRange(%q)(%q) = %v, want %v", tt.built, tt.host, got, tt.want)
		}
	}
}

func TestCompatibleRange_Invalid(t *testing.T) {
	if _, err := CompatibleRange("not-a-version"); err == nil {
		t.Error("expected error for invalid built version")
	}
}

func TestCheckHostVersion(t *testing.T) {
	old := version.MdbookVersion
	version.MdbookVersion = "0.4.40"
	defer func() { version.MdbookVersion = old }()

	buf := &bytes.Buffer{}
	logger.Init(logger.Options{Output: buf})
	defer logger.Init(logger.Options{})

	ok, err := CheckHostVersion(New(), &book.Context{MdbookVersion: "0.4.45"})
	if err != nil || !ok {
		t.Errorf("CheckHostVersion(0.4.45) = %v, %v; want true, nil", ok, err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	ok, err = CheckHostVersion(New(), &book.Context{MdbookVersion: "v0.5.1"})
	if err != nil || ok {
		t.Errorf("CheckHostVersion(v0.5.1) = %v, %v; want false, nil", ok, err)
	}
	if !strings.Contains(buf.String(), "built against version 0.4.40") ||
		!strings.Contains(buf.String(), "called from version v0.5.1") {
		t.Errorf("expected mismatch warning, got %q", buf.String())
	}
}

func TestCheckHostVersion_Unparsable(t *testing.T) {
	if _, err := CheckHostVersion(New(), &book.Context{MdbookVersion: "latest"}); err == nil {
		t.Error("expected error for unparsable host version")
	}
}
