package pipeline

import (
	"github.com/teranos/xmlprops/xmlgen"
)

// Outcome is the result of one document. Exactly one of Result and Err is
// meaningful: Err is set when the document failed.
type Outcome struct {
	Document string
	Result   xmlgen.Result
	Err      error
}

// Failed reports whether the document failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report lists per-document outcomes in input order.
type Report struct {
	Outcomes []Outcome
}

// Emitted counts documents that produced a file.
func (r *Report) Emitted() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Failed() && o.Result.Status == xmlgen.StatusEmitted {
			n++
		}
	}
	return n
}

// Skipped counts documents skipped by their match rule.
func (r *Report) Skipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Failed() && o.Result.Status == xmlgen.StatusSkipped {
			n++
		}
	}
	return n
}

// Failed counts documents that failed.
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether no document failed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}
