package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/variant"
	"github.com/teranos/xmlprops/xmlgen"
)

// DefaultWorkers bounds parallel generation when no limit is configured.
const DefaultWorkers = 4

// Runner generates batches of documents into one output directory.
type Runner struct {
	gen     *xmlgen.Generator
	outDir  string
	workers int
	log     *zap.SugaredLogger
}

// NewRunner creates a runner. workers <= 0 means DefaultWorkers.
func NewRunner(gen *xmlgen.Generator, outDir string, workers int, log *zap.SugaredLogger) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		gen:     gen,
		outDir:  outDir,
		workers: workers,
		log:     log,
	}
}

// OutDir returns the directory files are written to.
func (r *Runner) OutDir() string {
	return r.outDir
}

// Run generates every document for vctx. A failing document is recorded in
// the report and never stops the others. Cancelling ctx stops scheduling;
// documents not yet started are reported with the context error.
func (r *Runner) Run(ctx context.Context, docs []string, vctx variant.Context) *Report {
	report := &Report{Outcomes: make([]Outcome, len(docs))}
	start := time.Now()

	log := r.log.With(logger.VariantFields(vctx.BuildType, vctx.Flavor)...)
	log.Infow("Generation started",
		logger.FieldCount, len(docs),
		logger.FieldWorkers, r.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, doc := range docs {
		report.Outcomes[i].Document = doc

		if err := gctx.Err(); err != nil {
			report.Outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				report.Outcomes[i].Err = err
				return nil
			}
			report.Outcomes[i] = r.generateOne(doc, vctx, log)
			return nil
		})
	}
	_ = g.Wait()

	log.Infow("Generation finished",
		logger.FieldEmitted, report.Emitted(),
		logger.FieldSkipped, report.Skipped(),
		logger.FieldFailed, report.Failed(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return report
}

func (r *Runner) generateOne(doc string, vctx variant.Context, log *zap.SugaredLogger) Outcome {
	start := time.Now()
	name := filepath.Base(doc)

	res, err := r.gen.GenerateFile(doc, vctx, r.outDir)
	if err != nil {
		log.Errorw("Document failed",
			logger.FieldDocument, name,
			logger.FieldError, err)
		return Outcome{Document: doc, Err: err}
	}

	switch res.Status {
	case xmlgen.StatusEmitted:
		log.Infow("Generated Kotlin file",
			logger.FieldDocument, name,
			logger.FieldOutput, res.Path,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	default:
		log.Debugw("Document skipped",
			logger.FieldDocument, name,
			logger.FieldReason, string(res.Reason))
	}
	return Outcome{Document: doc, Result: res}
}
