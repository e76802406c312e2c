// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
	"time"

	"genescan/internal/engine"
)

// Config controls the analysis pipeline.
type Config struct {
	Threads    int          // number of worker goroutines (>=1)
	MaxSamples int          // patients per run across all inputs; 0 = all
	Logs       *engine.Logs // optional per-scanner logs
	Observer   Observer     // optional
	// Keep drops records before analysis when it returns false. Called
	// from the feeding goroutine only.
	Keep func(engine.Record) bool
	// OnPatientError receives per-patient analysis errors. The failed
	// result is still visited and the run continues.
	OnPatientError func(error)
}

type outcome struct {
	res     engine.Result
	err     error
	elapsed time.Duration
}

// firstErr keeps the first non-nil error reported to it.
type firstErr struct {
	mu  sync.Mutex
	err error
}

func (f *firstErr) set(err error) {
	f.mu.Lock()
	if f.err == nil {
		f.err = err
	}
	f.mu.Unlock()
}

func (f *firstErr) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// ForEachResult loads every input, analyzes each record on cfg.Threads
// workers and calls visit once per result. Results arrive in completion
// order. Load and visit errors do not stop other inputs; the first one is
// returned. Context cancellation stops feeding and returns ctx.Err().
func ForEachResult(
	ctx context.Context,
	cfg Config,
	inputs []string,
	loader Loader,
	an Analyzer,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan engine.Record, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					start := time.Now()
					res, err := an.AnalyzeInto(rec, cfg.Logs)
					o := outcome{res: res, err: err, elapsed: time.Since(start)}
					select {
					case results <- o:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		ferr firstErr
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for o := range results {
			if o.err != nil && cfg.OnPatientError != nil {
				cfg.OnPatientError(o.err)
			}
			if cfg.Observer != nil {
				cfg.Observer.ObserveAnalysis(o.res, o.elapsed)
			}
			if err := visit(o.res); err != nil {
				ferr.set(err)
			}
		}
	}()

	// Feed work
	fed := 0
feed:
	for _, in := range inputs {
		recs, err := loader.Load(ctx, in)
		if err != nil {
			// Keep loading other inputs; first error will be returned.
			ferr.set(err)
			continue
		}
		for _, rec := range recs {
			if cfg.Keep != nil && !cfg.Keep(rec) {
				continue
			}
			if cfg.MaxSamples > 0 && fed >= cfg.MaxSamples {
				break feed
			}
			select {
			case <-ctx.Done():
				break feed
			case jobs <- rec:
				fed++
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return ferr.get()
}

// Collect runs ForEachResult and returns every result.
func Collect(ctx context.Context, cfg Config, inputs []string, loader Loader, an Analyzer) ([]engine.Result, error) {
	var out []engine.Result
	err := ForEachResult(ctx, cfg, inputs, loader, an, func(r engine.Result) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
