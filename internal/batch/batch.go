package batch

import (
	"context"
	"fmt"

	"github.com/alexiusacademia/gorcw/internal/log"
	"github.com/alexiusacademia/gorcw/internal/shear"
	"github.com/alexiusacademia/gorcw/internal/table"
	"golang.org/x/sync/errgroup"
)

// Policy decides what happens when a row fails
type Policy int

const (
	// PolicyAbort stops the batch at the first failing row
	PolicyAbort Policy = iota
	// PolicySkip logs failing rows and leaves them out of the output
	PolicySkip
)

// ParsePolicy maps the config spelling to a Policy
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	}
	return PolicyAbort, fmt.Errorf("unknown error policy %q", name)
}

// Options for a batch run
type Options struct {
	Workers int
	Policy  Policy
}

// RowError identifies the input row that failed
type RowError struct {
	Index int // 0-based position in the input
	Tag   string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (tag %q): %v", e.Index+1, e.Tag, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Outcome is the evaluation of one input row
type Outcome struct {
	Input      shear.Input
	Evaluation *shear.Evaluation
	Err        error
}

// Report holds the outcomes of a batch in input order
type Report struct {
	Outcomes []Outcome
	Failed   []*RowError
}

// Outputs returns the result rows of every successful outcome, in input order
func (r *Report) Outputs() []table.Output {
	outputs := make([]table.Output, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Err == nil && o.Evaluation != nil {
			outputs = append(outputs, table.NewOutput(o.Evaluation))
		}
	}
	return outputs
}

// Run evaluates every row. Each row writes only its own slot so the
// outcomes keep the input order whatever the number of workers.
// Under PolicyAbort the returned RowError is the lowest failing row.
func Run(ctx context.Context, rows []shear.Input, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	report := &Report{Outcomes: make([]Outcome, len(rows))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rows {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			// rows are started in order, so every row before a failure is evaluated
			if err := ctx.Err(); err != nil {
				return err
			}
			in := rows[i]
			ev, err := shear.Evaluate(in)
			report.Outcomes[i] = Outcome{Input: in, Evaluation: ev, Err: err}
			if err != nil {
				rowErr := &RowError{Index: i, Tag: in.Tag, Err: err}
				if opts.Policy == PolicyAbort {
					return rowErr
				}
				log.Warnw("skipping row", "row", i+1, "tag", in.Tag, "error", err)
				return nil
			}
			log.Debugw("row evaluated", "row", i+1, "tag", in.Tag,
				"phi_vn_standard", ev.Result.DesignStandard, "phi_vn_annex", ev.Result.DesignAnnex)
			return nil
		})
	}

	waitErr := g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if waitErr != nil {
		return nil, firstFailure(report.Outcomes, waitErr)
	}

	for i, o := range report.Outcomes {
		if o.Err != nil {
			report.Failed = append(report.Failed, &RowError{Index: i, Tag: o.Input.Tag, Err: o.Err})
		}
	}

	log.Infow("batch complete", "rows", len(rows), "failed", len(report.Failed), "workers", workers)
	return report, nil
}

// firstFailure returns the failed row with the lowest index, or fallback
func firstFailure(outcomes []Outcome, fallback error) error {
	for i, o := range outcomes {
		if o.Err != nil {
			return &RowError{Index: i, Tag: o.Input.Tag, Err: o.Err}
		}
	}
	return fallback
}
