package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Markers returned by Translate for inputs that produce no code.
// Both are normal results, not errors: an instruction nobody taught
// the engine is a valid terminal outcome.
const (
	// Unrecognized is returned when no rule's trigger matches.
	Unrecognized = "# I don't understand. Type 'help' for available commands."

	// EmptyInstruction is returned when the instruction is blank after
	// normalization. The rule table is never consulted.
	EmptyInstruction = "# Please enter an instruction"
)

// SynthFunc renders the capture groups of a successful trigger match
// into a code string. Index 0 is the whole match, 1..n the groups,
// mirroring regexp.FindStringSubmatch. Synthesis functions are pure;
// they return an error (wrapping ErrMalformed) only when captured text
// cannot be rendered into valid code.
type SynthFunc func(captures []string) (string, error)

// Rule pairs a trigger pattern with a synthesis function.
//
// The trigger must match the entire normalized instruction, not a
// substring; patterns are compiled anchored. Rules are immutable after
// construction and hold no state between matches.
type Rule struct {
	// Name is a stable identifier, e.g. "print-range".
	Name string

	// Usage is the instruction template shown in the help catalog,
	// e.g. "print numbers from X to Y".
	Usage string

	// Summary is a one-line description of what the rule generates.
	Summary string

	// Example is a literal instruction the trigger accepts. Every rule
	// must carry one; the catalog round-trip test depends on it.
	Example string

	trigger *regexp.Regexp
	synth   SynthFunc
}

// newRule compiles pattern anchored to the whole input and panics on a
// bad pattern. Rule tables are built from literals at startup, so a
// compile failure is a programming error.
func newRule(name, usage, summary, example, pattern string, synth SynthFunc) Rule {
	return Rule{
		Name:    name,
		Usage:   usage,
		Summary: summary,
		Example: example,
		trigger: regexp.MustCompile(`\A(?:` + pattern + `)\z`),
		synth:   synth,
	}
}

// Engine translates constrained natural-language instructions into
// Python snippets using an ordered rule table. The first rule whose
// trigger matches the whole normalized instruction wins; there is no
// scoring and no backtracking.
//
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	rules []Rule
}

// New builds an engine with the default rule table.
func New() *Engine {
	e := &Engine{}
	e.rules = defaultRules(e)
	return e
}

// Normalize lower-cases the instruction and strips surrounding
// whitespace. Internal spacing and punctuation are preserved: list and
// dictionary triggers rely on the exact "," and ":" separators.
func Normalize(instruction string) string {
	return strings.ToLower(strings.TrimSpace(instruction))
}

// Translate converts one instruction into a code string.
//
// The unrecognized and empty-instruction markers are returned with a
// nil error. A non-nil error means a rule matched but its captures
// could not be rendered (see ErrMalformed); no partial code is
// returned in that case.
func (e *Engine) Translate(instruction string) (string, error) {
	instruction = Normalize(instruction)
	if instruction == "" {
		return EmptyInstruction, nil
	}

	rule, captures := e.match(instruction)
	if rule == nil {
		return Unrecognized, nil
	}

	code, err := rule.synth(captures)
	if err != nil {
		return "", fmt.Errorf("%s: %w", rule.Name, err)
	}
	return code, nil
}

// match returns the first rule, in declared order, whose trigger
// matches the whole instruction, along with its captures.
func (e *Engine) match(instruction string) (*Rule, []string) {
	for i := range e.rules {
		if captures := e.rules[i].trigger.FindStringSubmatch(instruction); captures != nil {
			return &e.rules[i], captures
		}
	}
	return nil, nil
}

// Rules returns the rule table in declared order. The slice is a copy;
// the table itself is never reordered or mutated after New.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}
