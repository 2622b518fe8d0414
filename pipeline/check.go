package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/variant"
)

// Drift classifies a generated file that does not match the output tree.
type Drift string

const (
	DriftStale   Drift = "stale"   // exists with different content
	DriftMissing Drift = "missing" // would be generated but does not exist
)

// Difference is one out-of-date output file.
type Difference struct {
	RelPath string
	Drift   Drift
	Diff    string // unified diff from current to expected content
}

// CheckResult is the outcome of comparing regenerated output with outDir.
type CheckResult struct {
	Report      *Report
	Differences []Difference
}

// UpToDate reports whether generation succeeded and nothing drifted.
func (c *CheckResult) UpToDate() bool {
	return c.Report.OK() && len(c.Differences) == 0
}

// Check regenerates docs into a temporary directory and compares every
// produced file with its counterpart under the runner's output directory.
// Files in the output directory that no document produces are ignored.
func (r *Runner) Check(ctx context.Context, docs []string, vctx variant.Context) (*CheckResult, error) {
	tempDir, err := os.MkdirTemp("", "xmlprops-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	scratch := NewRunner(r.gen, tempDir, r.workers, r.log.Named("check"))
	report := scratch.Run(ctx, docs, vctx)

	result := &CheckResult{Report: report}
	for _, o := range report.Outcomes {
		if o.Failed() || !o.Result.Emitted() {
			continue
		}
		rel, err := filepath.Rel(tempDir, o.Result.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to relativize %s", o.Result.Path)
		}
		diff, err := compareFile(o.Result.Path, filepath.Join(r.outDir, rel), rel)
		if err != nil {
			return nil, err
		}
		if diff != nil {
			result.Differences = append(result.Differences, *diff)
		}
	}
	return result, nil
}

// compareFile returns nil when existing matches expected.
func compareFile(expectedPath, existingPath, rel string) (*Difference, error) {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", expectedPath)
	}

	existing, err := os.ReadFile(existingPath)
	if os.IsNotExist(err) {
		return &Difference{RelPath: rel, Drift: DriftMissing, Diff: unifiedDiff(nil, expected, rel)}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", existingPath)
	}

	if bytes.Equal(existing, expected) {
		return nil, nil
	}
	return &Difference{RelPath: rel, Drift: DriftStale, Diff: unifiedDiff(existing, expected, rel)}, nil
}

func unifiedDiff(current, expected []byte, rel string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(expected)),
		FromFile: "current/" + rel,
		ToFile:   "expected/" + rel,
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err.Error()
	}
	return out
}
