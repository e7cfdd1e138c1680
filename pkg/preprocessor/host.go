package preprocessor

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/internal/version"
	"github.com/jmylchreest/mdbook-nocomment/pkg/book"
)

// CompatibleRange returns the caret range of built: the host versions whose
// preprocessor protocol should match the one built against.
func CompatibleRange(built string) (semver.Range, error) {
	v, err := semver.ParseTolerant(built)
	if err != nil {
		return nil, fmt.Errorf("parsing built-against version %q: %w", built, err)
	}

	var upper string
	switch {
	case v.Major > 0:
		upper = fmt.Sprintf("%d.0.0", v.Major+1)
	case v.Minor > 0:
		upper = fmt.Sprintf("0.%d.0", v.Minor+1)
	default:
		upper = fmt.Sprintf("0.0.%d", v.Patch+1)
	}
	return semver.ParseRange(fmt.Sprintf(">=%d.%d.%d <%s", v.Major, v.Minor, v.Patch, upper))
}

// CheckHostVersion warns when the calling mdbook is outside the range this
// binary was built against. Only an unparsable version is an error; a
// mismatch still lets the build run.
func CheckHostVersion(p Preprocessor, ctx *book.Context) (bool, error) {
	host, err := semver.ParseTolerant(strings.TrimSpace(ctx.MdbookVersion))
	if err != nil {
		return false, fmt.Errorf("parsing mdbook version %q: %w", ctx.MdbookVersion, err)
	}

	compatible, err := CompatibleRange(version.MdbookVersion)
	if err != nil {
		return false, err
	}

	if !compatible(host) {
		logger.Warn(fmt.Sprintf("The %s plugin was built against version %s of mdbook, but we're being called from version %s",
			p.Name(), version.MdbookVersion, ctx.MdbookVersion))
		return false, nil
	}
	return true, nil
}
