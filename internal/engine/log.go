package engine

import (
	"sync"

	"genescan/internal/alignment"
	"genescan/internal/mutation"
	"genescan/internal/pattern"
)

// Log is a caller-owned, append-only record of past results. It is safe for
// concurrent use.
type Log[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewLog[T any]() *Log[T] { return &Log[T]{} }

func (l *Log[T]) Append(v T) {
	l.mu.Lock()
	l.items = append(l.items, v)
	l.mu.Unlock()
}

// Results returns a copy of everything appended so far, in append order.
func (l *Log[T]) Results() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

func (l *Log[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Clear drops every stored result.
func (l *Log[T]) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

// LogSummary names a log and counts its entries.
type LogSummary struct {
	Name  string
	Total int
}

func (l *Log[T]) Summarize(name string) LogSummary {
	return LogSummary{Name: name, Total: l.Len()}
}

// Logs holds one optional log per scanner.
type Logs struct {
	Alignment *Log[alignment.Result]
	Mutation  *Log[mutation.Analysis]
	Pattern   *Log[pattern.Analysis]
}

// NewLogs returns Logs with every log allocated.
func NewLogs() *Logs {
	return &Logs{
		Alignment: NewLog[alignment.Result](),
		Mutation:  NewLog[mutation.Analysis](),
		Pattern:   NewLog[pattern.Analysis](),
	}
}

// Summaries reports the size of each log.
func (ls *Logs) Summaries() []LogSummary {
	if ls == nil {
		return nil
	}
	var out []LogSummary
	if ls.Alignment != nil {
		out = append(out, ls.Alignment.Summarize("alignment"))
	}
	if ls.Mutation != nil {
		out = append(out, ls.Mutation.Summarize("mutation"))
	}
	if ls.Pattern != nil {
		out = append(out, ls.Pattern.Summarize("pattern"))
	}
	return out
}

// Clear empties every log.
func (ls *Logs) Clear() {
	if ls == nil {
		return
	}
	if ls.Alignment != nil {
		ls.Alignment.Clear()
	}
	if ls.Mutation != nil {
		ls.Mutation.Clear()
	}
	if ls.Pattern != nil {
		ls.Pattern.Clear()
	}
}

func (ls *Logs) alignment(r alignment.Result) {
	if ls != nil && ls.Alignment != nil {
		ls.Alignment.Append(r)
	}
}

func (ls *Logs) mutation(a mutation.Analysis) {
	if ls != nil && ls.Mutation != nil {
		ls.Mutation.Append(a)
	}
}

func (ls *Logs) pattern(a pattern.Analysis) {
	if ls != nil && ls.Pattern != nil {
		ls.Pattern.Append(a)
	}
}
