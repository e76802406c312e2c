// internal/app/analyze.go
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"genescan/internal/appcore"
	"genescan/internal/assess"
	"genescan/internal/cliutil"
	"genescan/internal/cmdutil"
	"genescan/internal/config"
	"genescan/internal/dataset"
	"genescan/internal/engine"
	"genescan/internal/metrics"
	"genescan/internal/runutil"
	"genescan/internal/sink"
	"genescan/internal/visitors"
	"genescan/internal/writers"
)

// bind ties viper keys to flags so flags override file and env settings.
func bind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

func newAnalyzeCmd(g *globals, code *int) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "analyze [inputs...]",
		Short: "Analyze patients from CSV, FASTA or SQL inputs",
		Long: `Analyze reads every input, pairs each patient's reference with their
sample, and writes one report. Inputs are CSV or FASTA files (optionally
gzipped, "-" for stdin, globs allowed), sqlite://path or postgres:// URLs.`,
		Example: `  genescan analyze patients.csv
  genescan analyze -f text --header --sort data/*.fa.gz
  genescan analyze --min-level moderate -o s3://reports/run1.json sqlite://genes.db
  genescan generate -n 20 | genescan analyze -f jsonl -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.loadConfig(v)
			if err != nil {
				return err
			}
			log := cmdutil.NewLogger(cmd.ErrOrStderr(), g.quiet, g.verbose)
			rc, err := runAnalyze(cmd.Context(), cmd.OutOrStdout(), log, c, args)
			if err != nil {
				return err
			}
			*code = rc
			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", "json", "report format: "+strings.Join(writers.Formats(), ", "))
	f.StringP("output", "o", "-", `report destination: "-", a file path, or s3://bucket/key`)
	f.Bool("header", false, "print a header row (text)")
	f.Bool("sort", false, "order results by patient id")
	f.String("min-level", "", "only report patients at or above this risk level (NORMAL, LOW, MODERATE, HIGH)")
	f.Int("empty-exit-code", appcore.ExitEmpty, "exit code when no patient is reported")
	f.IntP("threads", "t", 0, "worker goroutines (0 = all CPUs)")
	f.Int("max-samples", 0, "analyze at most this many patients (0 = all)")
	f.String("table", dataset.DefaultTable, "table holding sequences for SQL inputs")
	f.StringSlice("gene", nil, "only analyze these gene types (repeatable)")
	f.Bool("dedupe", false, "skip patients already seen in an earlier input")
	f.Int("significance-threshold", 5, "mutations at which a sample becomes moderate")
	f.Int("hotspot-window", 100, "bp per mutation hotspot window")
	f.Int("window", 100, "GC profile window size")
	f.Int("stride", 0, "GC profile window stride (0 = window/2)")
	f.Float64("gc-threshold", 55.0, "GC percent above which a window is conserved")
	f.Int("kmer", 3, "k for sequence complexity")
	f.Int("repeat-min", 3, "shortest repeating pattern")
	f.Int("repeat-max", 10, "longest repeating pattern")
	f.Int("tandem-min", 2, "shortest tandem repeat unit")
	f.Int("tandem-max", 6, "longest tandem repeat unit")
	f.String("metrics-file", "", "write prometheus metrics to this textfile at exit")
	f.String("s3-region", "", "S3 region for s3:// outputs")
	f.String("s3-endpoint", "", "custom S3 endpoint (e.g. MinIO)")
	f.Bool("s3-path-style", false, "use path-style S3 addressing")

	bind(v, f, map[string]string{
		"report.format":                   "format",
		"report.output":                   "output",
		"report.header":                   "header",
		"report.min-level":                "min-level",
		"report.empty-exit-code":          "empty-exit-code",
		"pipeline.sort":                   "sort",
		"pipeline.threads":                "threads",
		"pipeline.max-samples":            "max-samples",
		"pipeline.table":                  "table",
		"pipeline.genes":                  "gene",
		"pipeline.dedupe":                 "dedupe",
		"mutation.significance-threshold": "significance-threshold",
		"mutation.hotspot-window":         "hotspot-window",
		"pattern.window":                  "window",
		"pattern.stride":                  "stride",
		"pattern.gc-threshold":            "gc-threshold",
		"pattern.kmer":                    "kmer",
		"pattern.repeat-min":              "repeat-min",
		"pattern.repeat-max":              "repeat-max",
		"pattern.tandem-min":              "tandem-min",
		"pattern.tandem-max":              "tandem-max",
		"metrics.textfile":                "metrics-file",
		"s3.region":                       "s3-region",
		"s3.endpoint":                     "s3-endpoint",
		"s3.path-style":                   "s3-path-style",
	})
	return cmd
}

func runAnalyze(ctx context.Context, stdout io.Writer, log *logrus.Logger, c config.Config, args []string) (int, error) {
	inputs, err := cliutil.ExpandInputs(args)
	if err != nil {
		return 0, usageErr(err)
	}
	format := c.Report.Format
	if _, ok := writers.ResultWriters[format]; !ok {
		return 0, usageErr(fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(writers.Formats(), ", ")))
	}
	var minLevel assess.Level
	if c.Report.MinLevel != "" {
		minLevel, _ = assess.ParseLevel(c.Report.MinLevel) // validated with the config
	}
	for _, w := range runutil.ValidateRun(format, c.Report.Header, c.Pipeline.Sort, c.Pipeline.MaxSamples, len(inputs)) {
		cmdutil.Warnf(log, "%s", w)
	}

	out, err := sink.Open(ctx, c.Report.Output, stdout, c.S3)
	if err != nil {
		return 0, ioErr(err)
	}

	opts := appcore.Options{
		Inputs:        inputs,
		Threads:       c.Pipeline.Threads,
		MaxSamples:    c.Pipeline.MaxSamples,
		Keep:          visitors.NewRecords(c.Pipeline.Genes, c.Pipeline.Dedupe).Keep,
		Loader:        dataset.Loader{Table: c.Pipeline.Table},
		Analyzer:      engine.New(c.Engine()),
		Log:           log,
		EmptyExitCode: c.Report.EmptyExitCode,
	}
	wopts := writers.Options{Sort: c.Pipeline.Sort, Header: c.Report.Header}
	if format == "json" {
		opts.Logs = engine.NewLogs()
		wopts.Analyzers = opts.Logs.Summaries
	}
	var rec *metrics.Recorder
	if c.Metrics.Textfile != "" {
		rec = metrics.New()
		opts.Observer = rec
	}

	log.WithFields(logrus.Fields{"inputs": len(inputs), "format": format, "threads": runutil.EffectiveThreads(c.Pipeline.Threads)}).Debug("analysis started")
	code := appcore.Run[engine.Result](ctx, out, opts, visitors.MinLevel{Level: minLevel}.Visit,
		appcore.NewResultWriterFactory(format, wopts))

	if err := out.Close(); err != nil {
		log.Error(err)
		if code != appcore.ExitCancelled {
			code = appcore.ExitIO
		}
	}
	if rec != nil {
		if err := rec.WriteTextfile(c.Metrics.Textfile); err != nil {
			log.Error(err)
			if code != appcore.ExitCancelled {
				code = appcore.ExitIO
			}
		}
	}
	return code, nil
}
