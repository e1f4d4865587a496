package batch

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/comalice/warmup/internal/numeric"
	"github.com/comalice/warmup/internal/problems"
)

// Caller invokes a function by name, as warmup.Call does.
type Caller func(name string, args ...any) (any, error)

// Runner evaluates case files sequentially.
type Runner struct {
	call  Caller
	log   *logrus.Entry
	newID func() string
}

// NewRunner creates a Runner dispatching through call and logging to log.
func NewRunner(call Caller, log *logrus.Entry) *Runner {
	return &Runner{call: call, log: log, newID: uuid.NewString}
}

// Run evaluates every case in file. Cancelling ctx stops the run between
// cases; the partial report is returned along with the context error.
func (r *Runner) Run(ctx context.Context, file File) (Report, error) {
	runID := r.newID()
	log := r.log.WithField("run_id", runID)
	report := Report{
		Summary: Summary{RunID: runID},
		Results: make([]Result, 0, len(file.Cases)),
	}

	log.WithField("cases", len(file.Cases)).Debug("run started")
	for _, c := range file.Cases {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("run cancelled")
			return report, fmt.Errorf("run %s: %w", runID, err)
		}

		res := r.evaluate(c)
		report.Results = append(report.Results, res)
		report.Summary.Total++
		if res.Error != "" {
			report.Summary.Errors++
		}

		caseLog := log.WithFields(logrus.Fields{"case": c.Name, "func": c.Func})
		switch {
		case res.Pass == nil:
			caseLog.Debug("case evaluated")
		case *res.Pass:
			report.Summary.Passed++
			caseLog.Debug("case passed")
		default:
			report.Summary.Failed++
			caseLog.WithFields(logrus.Fields{"result": res.Result, "error": res.Error}).Warn("case failed")
		}
	}

	log.WithFields(logrus.Fields{
		"total":  report.Summary.Total,
		"passed": report.Summary.Passed,
		"failed": report.Summary.Failed,
		"errors": report.Summary.Errors,
	}).Info("run complete")
	return report, nil
}

func (r *Runner) evaluate(c Case) Result {
	res := Result{Name: c.Name, Func: c.Func}
	out, err := r.call(c.Func, c.Args...)
	if err != nil {
		res.Error = err.Error()
		res.Kind = problems.KindOf(err)
	} else {
		res.Result = out
	}

	switch {
	case c.Error != "":
		pass := err != nil && (res.Kind == c.Error || strings.Contains(res.Error, c.Error))
		res.Pass = &pass
	case c.Want != nil:
		pass := err == nil && Equal(c.Want, out)
		res.Pass = &pass
	}
	return res
}

// Equal compares an expected value from a case file with a result. Integral
// numbers compare equal whatever their Go type, lists compare element-wise.
func Equal(want, got any) bool {
	return reflect.DeepEqual(normalize(want), normalize(got))
}

func normalize(v any) any {
	if numeric.IsNumber(v) {
		if n, err := numeric.Int(v); err == nil {
			return n
		}
		return v
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return v
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = normalize(rv.Index(i).Interface())
	}
	return out
}
