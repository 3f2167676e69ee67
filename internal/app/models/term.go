package models

import (
	"fmt"
	"regexp"
	"sort"

	"classfinder/internal/pkg/apperrors"
)

// Term is an academic quarter identifier, e.g. "fall2022".
type Term string

// termPattern constrains term identifiers to lowercase season + 4-digit year.
// Table names are derived from terms, so nothing outside this shape is ever
// accepted, even at registry construction time.
var termPattern = regexp.MustCompile(`^[a-z]+[0-9]{4}$`)

// TermTables holds the three table names backing a single term.
type TermTables struct {
	Classes     string
	Instructors string
	Meetings    string
}

// TermRegistry is the allow-list mapping of known terms to their table names.
// Every dynamic table name in the service passes through here first.
type TermRegistry struct {
	suffixes map[Term]string
}

// NewTermRegistry builds a registry from configured term identifiers.
// Malformed identifiers are rejected up front rather than at query time.
func NewTermRegistry(terms []string) (*TermRegistry, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("term registry requires at least one term")
	}

	suffixes := make(map[Term]string, len(terms))
	for _, t := range terms {
		if !termPattern.MatchString(t) {
			return nil, fmt.Errorf("invalid term identifier %q: must match %s", t, termPattern)
		}
		suffixes[Term(t)] = t
	}

	return &TermRegistry{suffixes: suffixes}, nil
}

// Contains reports whether term is in the allow-list.
func (r *TermRegistry) Contains(term Term) bool {
	_, ok := r.suffixes[term]
	return ok
}

// Tables resolves a term to its table names, or ErrTermNotAllowed for
// anything outside the allow-list.
func (r *TermRegistry) Tables(term Term) (TermTables, error) {
	suffix, ok := r.suffixes[term]
	if !ok {
		return TermTables{}, fmt.Errorf("%w: %q", apperrors.ErrTermNotAllowed, term)
	}
	return TermTables{
		Classes:     "classes_" + suffix,
		Instructors: "instructors_" + suffix,
		Meetings:    "meetings_" + suffix,
	}, nil
}

// Terms returns all registered terms in lexical order.
func (r *TermRegistry) Terms() []Term {
	terms := make([]Term, 0, len(r.suffixes))
	for t := range r.suffixes {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i] < terms[j] })
	return terms
}
