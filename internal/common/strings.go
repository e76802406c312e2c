package common

import "strings"

// UniqueUpper trims/uppercases and de-duplicates strings, preserving order.
func UniqueUpper(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		u := strings.ToUpper(strings.TrimSpace(s))
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// StringSet builds a lookup set; a nil set matches everything.
type StringSet map[string]struct{}

func NewStringSet(in []string) StringSet {
	if len(in) == 0 {
		return nil
	}
	s := make(StringSet, len(in))
	for _, v := range in {
		s[v] = struct{}{}
	}
	return s
}

func (s StringSet) Has(v string) bool {
	if s == nil {
		return true
	}
	_, ok := s[v]
	return ok
}
