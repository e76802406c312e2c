package appcore

import (
	"io"

	"genescan/internal/engine"
	"genescan/internal/writers"
)

// ResultWriterFactory starts a registered result writer.
type ResultWriterFactory struct {
	Format string
	Opts   writers.Options
}

func NewResultWriterFactory(format string, opts writers.Options) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Opts: opts}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	o := w.Opts
	o.BufSize = bufSize
	return writers.StartResultWriter(out, w.Format, o)
}
