// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"genescan/internal/cmdutil"
	"genescan/internal/engine"
	"genescan/internal/pipeline"
	"genescan/internal/runutil"
	"genescan/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitEmpty     = 1 // default for runs that emit nothing; see Options.EmptyExitCode
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

type Options struct {
	Inputs []string

	Threads    int
	MaxSamples int
	Keep       func(engine.Record) bool

	Loader   pipeline.Loader
	Analyzer pipeline.Analyzer
	Logs     *engine.Logs
	Observer pipeline.Observer

	Log           logrus.FieldLogger
	EmptyExitCode int
}

type VisitorFunc[T any] func(engine.Result) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run streams every patient of o.Inputs through the analyzer, the visitor
// and the writer, and maps the outcome to an exit code.
func Run[T any](
	parent context.Context,
	stdout io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	log := o.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	outw := bufio.NewWriter(stdout)
	thr := runutil.EffectiveThreads(o.Threads)

	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Threads:    thr,
			MaxSamples: o.MaxSamples,
			Logs:       o.Logs,
			Observer:   o.Observer,
			Keep:       o.Keep,
			OnPatientError: func(err error) {
				cmdutil.Warnf(log, "%v", err)
			},
		},
		o.Inputs,
		o.Loader,
		o.Analyzer,
		func(r engine.Result) (bool, T, error) {
			logResult(log, r)
			return visit(r)
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error(werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error(e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		log.Error(perr)
		return ExitIO
	}
	if total == 0 {
		return o.EmptyExitCode
	}
	return ExitOK
}

func logResult(log logrus.FieldLogger, r engine.Result) {
	fields := logrus.Fields{"patient_id": r.PatientID, "gene_type": r.GeneType}
	switch r.Status {
	case engine.StatusOK:
		fields["mutations"] = r.Mutation.Total
		fields["risk_level"] = r.Assessment.Level
		log.WithFields(fields).Info("patient analyzed")
	case engine.StatusMissingInput:
		log.WithFields(fields).Warn("patient skipped: " + r.Error)
	default:
		log.WithFields(fields).Debug("patient failed")
	}
}
