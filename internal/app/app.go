// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genescan/internal/appcore"
	"genescan/internal/config"
	"genescan/internal/version"
)

// exitError carries an exit code out of a cobra RunE. A nil err means the
// problem has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: appcore.ExitUsage, err: err} }
func ioErr(err error) error    { return &exitError{code: appcore.ExitIO, err: err} }

// globals are the persistent root flags.
type globals struct {
	configPath string
	quiet      bool
	verbose    bool
}

// loadConfig decodes and validates settings for one command run.
func (g *globals) loadConfig(v *viper.Viper) (config.Config, error) {
	c, err := config.Load(v, g.configPath)
	if err != nil {
		return config.Config{}, usageErr(err)
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, usageErr(err)
	}
	return c, nil
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "genescan",
		Short: "Screen patient DNA samples against their reference sequences.",
		Long: `genescan compares each patient's sample sequence with a reference,
finds point mutations and hotspots, scans the sample for motifs and repeats,
scores the alignment, and grades the patient's risk.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("genescan version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "settings file (yaml, toml or json)")
	pf.BoolVarP(&g.quiet, "quiet", "q", false, "only log warnings and errors")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug details")

	root.AddCommand(
		newAnalyzeCmd(g, code),
		newGenerateCmd(g, code),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "genescan version %s\n", version.Version); err != nil {
					return ioErr(err)
				}
				return nil
			},
		},
	)
	return root
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	root := newRootCmd(stdout, stderr, &code)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return code
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	// flag and argument errors from cobra
	_, _ = fmt.Fprintln(stderr, "error:", err)
	_, _ = fmt.Fprintln(stderr, "Run 'genescan --help' for usage.")
	return appcore.ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
