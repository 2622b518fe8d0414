// Package version reports build information for the xmlprops binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/xmlprops/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// ErrIncompatible indicates the binary does not satisfy a project's required_version
var ErrIncompatible = errors.New("incompatible xmlprops version")

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("xmlprops %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("xmlprops dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// IsDev reports whether this is an untagged development build
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// Satisfies checks the build against a semver constraint such as ">= 0.4, < 1".
// An empty constraint and development builds always pass.
func (i Info) Satisfies(constraint string) error {
	if constraint == "" || i.IsDev() {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}

	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return errors.Wrapf(err, "invalid build version %q", i.Version)
	}

	if !c.Check(v) {
		return errors.WithHint(
			errors.Wrapf(ErrIncompatible, "project requires xmlprops %s, but running %s", constraint, i.Version),
			"install a matching xmlprops release or relax required_version in xmlprops.toml",
		)
	}
	return nil
}
