// Package config is for run wide settings that are unmarshalled
// from Viper: defaults, an optional settings file, GENESCAN_* environment
// variables and bound command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"genescan/internal/assess"
	"genescan/internal/engine"
	"genescan/internal/mutation"
	"genescan/internal/pattern"
	"genescan/internal/sink"
)

// EnvPrefix prefixes every environment override, e.g.
// GENESCAN_PIPELINE_THREADS or GENESCAN_PATTERN_GC_THRESHOLD.
const EnvPrefix = "GENESCAN"

var ErrInvalid = errors.New("invalid configuration")

// MutationConfig tunes the mutation scanner.
type MutationConfig struct {
	// mutation count at which a sample becomes "moderate"
	SignificanceThreshold int `mapstructure:"significance-threshold"`
	// bp per hotspot window
	HotspotWindow int `mapstructure:"hotspot-window"`
}

// MotifConfig is one named motif.
type MotifConfig struct {
	Name     string `mapstructure:"name"`
	Sequence string `mapstructure:"sequence"`
}

// PatternConfig tunes the pattern scanner.
type PatternConfig struct {
	// replaces the stock motif set when non-empty
	Motifs      []MotifConfig `mapstructure:"motifs"`
	RepeatMin   int           `mapstructure:"repeat-min"`
	RepeatMax   int           `mapstructure:"repeat-max"`
	Kmer        int           `mapstructure:"kmer"`
	Window      int           `mapstructure:"window"`
	Stride      int           `mapstructure:"stride"` // 0 = window/2
	GCThreshold float64       `mapstructure:"gc-threshold"`
	TandemMin   int           `mapstructure:"tandem-min"`
	TandemMax   int           `mapstructure:"tandem-max"`
}

// PipelineConfig is about feeding patients through the engine.
type PipelineConfig struct {
	Threads    int      `mapstructure:"threads"` // 0 = all CPUs
	Sort       bool     `mapstructure:"sort"`
	MaxSamples int      `mapstructure:"max-samples"`
	Table      string   `mapstructure:"table"` // SQL inputs
	Genes      []string `mapstructure:"genes"` // empty = all
	Dedupe     bool     `mapstructure:"dedupe"`
}

// ReportConfig is about the output document.
type ReportConfig struct {
	Format        string `mapstructure:"format"`
	Output        string `mapstructure:"output"` // "-", path, or s3://bucket/key
	Header        bool   `mapstructure:"header"`
	MinLevel      string `mapstructure:"min-level"` // "" keeps every patient
	EmptyExitCode int    `mapstructure:"empty-exit-code"`
}

type MetricsConfig struct {
	// node-exporter textfile written at the end of a run
	Textfile string `mapstructure:"textfile"`
}

// Config is the root-level settings struct.
type Config struct {
	Mutation MutationConfig `mapstructure:"mutation"`
	Pattern  PatternConfig  `mapstructure:"pattern"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Report   ReportConfig   `mapstructure:"report"`
	S3       sink.S3Config  `mapstructure:"s3"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// SetDefaults registers every key so environment overrides and Unmarshal
// see it.
func SetDefaults(v *viper.Viper) {
	m, p := mutation.DefaultConfig(), pattern.DefaultConfig()
	v.SetDefault("mutation.significance-threshold", m.SignificanceThreshold)
	v.SetDefault("mutation.hotspot-window", m.HotspotWindow)

	v.SetDefault("pattern.motifs", []MotifConfig{})
	v.SetDefault("pattern.repeat-min", p.RepeatMinLen)
	v.SetDefault("pattern.repeat-max", p.RepeatMaxLen)
	v.SetDefault("pattern.kmer", p.KmerSize)
	v.SetDefault("pattern.window", p.WindowSize)
	v.SetDefault("pattern.stride", 0)
	v.SetDefault("pattern.gc-threshold", p.GCThreshold)
	v.SetDefault("pattern.tandem-min", p.TandemMin)
	v.SetDefault("pattern.tandem-max", p.TandemMax)

	v.SetDefault("pipeline.threads", 0)
	v.SetDefault("pipeline.sort", false)
	v.SetDefault("pipeline.max-samples", 0)
	v.SetDefault("pipeline.table", "sequences")
	v.SetDefault("pipeline.genes", []string{})
	v.SetDefault("pipeline.dedupe", false)

	v.SetDefault("report.format", "json")
	v.SetDefault("report.output", "-")
	v.SetDefault("report.header", false)
	v.SetDefault("report.min-level", "")
	v.SetDefault("report.empty-exit-code", 1)

	v.SetDefault("s3.region", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.path-style", false)
	v.SetDefault("s3.access-key-id", "")
	v.SetDefault("s3.secret-access-key", "")

	v.SetDefault("metrics.textfile", "")
}

// Load reads path (if non-empty) on top of the defaults, applies the
// environment, and decodes into a Config. Flags must already be bound to v.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
}

// Validate reports every bad setting at once.
func (c Config) Validate() error {
	var errs []error
	check := func(bad bool, format string, a ...any) {
		if bad {
			errs = append(errs, invalid(format, a...))
		}
	}
	check(c.Mutation.SignificanceThreshold <= 0, "mutation.significance-threshold must be > 0")
	check(c.Mutation.HotspotWindow <= 0, "mutation.hotspot-window must be > 0")

	p := c.Pattern
	check(p.RepeatMin <= 0, "pattern.repeat-min must be > 0")
	check(p.RepeatMax < p.RepeatMin, "pattern.repeat-max (%d) < repeat-min (%d)", p.RepeatMax, p.RepeatMin)
	check(p.Kmer <= 0, "pattern.kmer must be > 0")
	check(p.Window <= 0, "pattern.window must be > 0")
	check(p.Stride < 0, "pattern.stride must be >= 0")
	check(p.GCThreshold <= 0 || p.GCThreshold > 100, "pattern.gc-threshold must be within (0,100]")
	check(p.TandemMin <= 0, "pattern.tandem-min must be > 0")
	check(p.TandemMax < p.TandemMin, "pattern.tandem-max (%d) < tandem-min (%d)", p.TandemMax, p.TandemMin)
	for i, m := range p.Motifs {
		check(m.Name == "" || m.Sequence == "", "pattern.motifs[%d] needs name and sequence", i)
	}

	check(c.Pipeline.Threads < 0, "pipeline.threads must be >= 0")
	check(c.Pipeline.MaxSamples < 0, "pipeline.max-samples must be >= 0")
	check(c.Report.Format == "", "report.format must be set")
	if c.Report.MinLevel != "" {
		_, err := assess.ParseLevel(c.Report.MinLevel)
		check(err != nil, "report.min-level %q is not a risk level", c.Report.MinLevel)
	}
	return errors.Join(errs...)
}

// Engine maps the scanner sections onto engine settings.
func (c Config) Engine() engine.Config {
	var motifs []pattern.Motif
	for _, m := range c.Pattern.Motifs {
		motifs = append(motifs, pattern.Motif{Name: m.Name, Sequence: strings.ToUpper(m.Sequence)})
	}
	return engine.Config{
		Mutation: mutation.Config{
			SignificanceThreshold: c.Mutation.SignificanceThreshold,
			HotspotWindow:         c.Mutation.HotspotWindow,
		},
		Pattern: pattern.Config{
			Motifs:       motifs,
			RepeatMinLen: c.Pattern.RepeatMin,
			RepeatMaxLen: c.Pattern.RepeatMax,
			KmerSize:     c.Pattern.Kmer,
			WindowSize:   c.Pattern.Window,
			WindowStride: c.Pattern.Stride,
			GCThreshold:  c.Pattern.GCThreshold,
			TandemMin:    c.Pattern.TandemMin,
			TandemMax:    c.Pattern.TandemMax,
		},
	}
}
