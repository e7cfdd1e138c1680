package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString_Dirty(t *testing.T) {
	oldVersion, oldDirty := Version, Dirty
	defer func() { Version, Dirty = oldVersion, oldDirty }()

	Version = "1.2.3"
	Dirty = "false"
	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q, want %q", got, "1.2.3")
	}

	Dirty = "true"
	if got := String(); got != "1.2.3-dirty" {
		t.Errorf("String() = %q, want %q", got, "1.2.3-dirty")
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.MdbookVersion != MdbookVersion {
		t.Errorf("MdbookVersion = %q, want %q", info.MdbookVersion, MdbookVersion)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
}

func TestFull(t *testing.T) {
	full := Full()

	for _, want := range []string{"mdbook-nocomment", "Commit:", "mdbook:", MdbookVersion} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() missing %q:\n%s", want, full)
		}
	}
}
