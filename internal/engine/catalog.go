package engine

import "github.com/lithammer/fuzzysearch/fuzzy"

// CommandDoc describes one supported instruction template. The catalog
// is derived from the rule table itself so documentation and behavior
// cannot drift apart.
type CommandDoc struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Summary string `json:"summary"`
	Example string `json:"example"`
}

// Catalog returns one CommandDoc per rule, in table order.
func (e *Engine) Catalog() []CommandDoc {
	docs := make([]CommandDoc, len(e.rules))
	for i, r := range e.rules {
		docs[i] = CommandDoc{
			Name:    r.Name,
			Usage:   r.Usage,
			Summary: r.Summary,
			Example: r.Example,
		}
	}
	return docs
}

// Suggest returns up to max usage templates ranked by fuzzy similarity
// to the instruction. Hosts print these next to the unrecognized
// marker as "did you mean" hints. Deterministic for a given input.
func (e *Engine) Suggest(instruction string, max int) []string {
	instruction = Normalize(instruction)
	if instruction == "" || max <= 0 {
		return nil
	}

	usages := make([]string, len(e.rules))
	for i, r := range e.rules {
		usages[i] = r.Usage
	}

	ranks := fuzzy.RankFindNormalizedFold(instruction, usages)
	if len(ranks) == 0 {
		return nil
	}

	// Stable selection: lower distance first, table order breaks ties.
	out := make([]string, 0, max)
	picked := make(map[int]bool, max)
	for len(out) < max {
		best := -1
		for i, r := range ranks {
			if picked[i] {
				continue
			}
			if best == -1 || r.Distance < ranks[best].Distance {
				best = i
			}
		}
		if best == -1 {
			break
		}
		picked[best] = true
		out = append(out, ranks[best].Target)
	}
	return out
}
