// Package catalog holds the static problem definitions, per-problem hints and
// the glossary. Everything here is immutable configuration data; the engine
// consumes it through the lookup API and never mutates it.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
)

// Problem is one fixed function-style exercise.
type Problem struct {
	Name        string
	Title       string
	Description string
	Signature   string
	// EntryPoint is the function the harness must locate in submitted code.
	// It can differ from Name (the palindrome problem's entry point is
	// is_palindrome).
	EntryPoint string
	Stubs      map[execution.Language]string
	Tests      []execution.TestCase
}

// Hint is step-by-step guidance for one problem in one language.
type Hint struct {
	Bullets    []string
	Pseudocode string
}

// Catalog is the immutable problem set, built once at startup.
type Catalog struct {
	problems map[string]Problem
	order    []string
}

// New builds the default catalog.
func New() *Catalog {
	return newCatalog(problems)
}

func newCatalog(defs []Problem) *Catalog {
	c := &Catalog{problems: make(map[string]Problem, len(defs))}
	for _, p := range defs {
		c.problems[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	sort.Strings(c.order)
	return c
}

// Names lists all problem names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Problems lists all problems in name order.
func (c *Catalog) Problems() []Problem {
	out := make([]Problem, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.problems[name])
	}
	return out
}

// ErrUnknownProblem reports a lookup for a problem the catalog does not hold.
var ErrUnknownProblem = errors.New("unknown problem")

// Get looks up a problem by name.
func (c *Catalog) Get(name string) (Problem, error) {
	p, ok := c.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("catalog: %w %q", ErrUnknownProblem, name)
	}
	return p, nil
}

// Stub returns the starter code for a problem in the given language. Problems
// without an explicit stub for the language fall back to a comment-only stub
// built from the Python signature.
func (p Problem) Stub(lang execution.Language) string {
	if stub, ok := p.Stubs[lang]; ok {
		return stub
	}
	if stub, ok := p.Stubs[execution.LanguagePython]; ok {
		return stub
	}
	return p.Signature + "\n    # Write your code here\n    pass\n"
}

// Hints returns the per-language hints for a problem. Problems without hints
// return an empty map.
func Hints(name string) map[execution.Language]Hint {
	return hints[name]
}

// Glossary returns the full term glossary.
func Glossary() map[string]string {
	out := make(map[string]string, len(glossary))
	for k, v := range glossary {
		out[k] = v
	}
	return out
}

// Terms lists the glossary terms relevant to a problem.
func Terms(name string) []string {
	terms := problemTerms[name]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}
