package xmlgen

import (
	"io"
	"os"
	"path/filepath"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/kotlin"
	"github.com/teranos/xmlprops/markup"
	"github.com/teranos/xmlprops/variant"
)

// Status is the terminal state of one document's generation.
type Status string

const (
	StatusEmitted Status = "emitted"
	StatusSkipped Status = "skipped"
)

// Reason explains a skip.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonNoMatchRule     Reason = "no-match-rule"
	ReasonVariantMismatch Reason = "variant-mismatch"
)

// Result describes what happened to one document. Skips are results, not
// errors.
type Result struct {
	Status  Status
	Reason  Reason
	Path    string // written file, empty when skipped
	Package string
	Name    string
}

// Emitted reports whether a file was produced.
func (r Result) Emitted() bool {
	return r.Status == StatusEmitted
}

const (
	tagMatch = "match"

	// Directory and file permissions for generated output
	dirPerm  = 0755
	filePerm = 0644
)

// Generator turns documents into Kotlin files. It holds no per-document
// state and is safe for concurrent use.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Plan evaluates a parsed document against ctx. It returns the file draft
// when the document matches, or a skipped Result and a nil draft.
func (g *Generator) Plan(root *markup.Node, ctx variant.Context) (*kotlin.File, Result, error) {
	name, hasName := root.Attr(attrName)
	pkg, hasPkg := root.Attr(attrPackage)
	if !hasName || name == "" {
		return nil, Result{}, errors.Wrapf(errors.ErrMissingRootAttribute, "<%s> has no %q attribute", root.Tag, attrName)
	}
	if !hasPkg {
		return nil, Result{}, errors.Wrapf(errors.ErrMissingRootAttribute, "<%s> has no %q attribute", root.Tag, attrPackage)
	}

	if err := (&kotlin.File{Package: pkg, Name: name}).CheckPath(); err != nil {
		return nil, Result{}, errors.Wrapf(err, "<%s>", root.Tag)
	}

	res := Result{Package: pkg, Name: name}

	match := root.Find(tagMatch)
	if match == nil {
		res.Status, res.Reason = StatusSkipped, ReasonNoMatchRule
		return nil, res, nil
	}
	if !variant.Matches(variant.RuleFrom(match), ctx) {
		res.Status, res.Reason = StatusSkipped, ReasonVariantMismatch
		return nil, res, nil
	}

	file := &kotlin.File{Package: pkg, Name: name}
	for _, child := range root.Elements() {
		frag, err := processFileNode(child)
		if err != nil {
			return nil, Result{}, err
		}
		file.Imports = append(file.Imports, frag.imports...)
		file.Properties = append(file.Properties, frag.properties...)
		file.Classes = append(file.Classes, frag.classes...)
	}

	res.Status = StatusEmitted
	return file, res, nil
}

// Generate parses a document from r and, when it matches ctx, writes its
// Kotlin file under outDir, replacing any previous file at that path. A
// skipped document writes nothing and removes nothing.
func (g *Generator) Generate(r io.Reader, ctx variant.Context, outDir string) (Result, error) {
	root, err := markup.Parse(r)
	if err != nil {
		return Result{}, err
	}

	file, res, err := g.Plan(root, ctx)
	if err != nil || !res.Emitted() {
		return res, err
	}

	path := file.Path(outDir)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return Result{}, errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(file.Render()), filePerm); err != nil {
		return Result{}, errors.Wrapf(err, "failed to write %s", path)
	}

	res.Path = path
	return res, nil
}

// GenerateFile is Generate for a document stored at docPath.
func (g *Generator) GenerateFile(docPath string, ctx variant.Context, outDir string) (Result, error) {
	f, err := os.Open(docPath)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to open %s", docPath)
	}
	defer f.Close()

	res, err := g.Generate(f, ctx, outDir)
	if err != nil {
		return Result{}, errors.Wrapf(err, "document %s", filepath.Base(docPath))
	}
	return res, nil
}
