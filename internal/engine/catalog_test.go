package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every documented template must be backed by a live rule: its example
// instruction has to translate to real code, not the sentinel.
func TestCatalogRoundTrip(t *testing.T) {
	e := New()
	docs := e.Catalog()
	require.Len(t, docs, len(e.Rules()))

	seen := make(map[string]bool)
	for _, doc := range docs {
		require.NotEmpty(t, doc.Name)
		require.NotEmpty(t, doc.Usage, "rule %s has no usage", doc.Name)
		require.NotEmpty(t, doc.Example, "rule %s has no example", doc.Name)
		assert.False(t, seen[doc.Name], "duplicate rule name %s", doc.Name)
		seen[doc.Name] = true

		code, err := e.Translate(doc.Example)
		require.NoError(t, err, "example for %s", doc.Name)
		assert.NotEqual(t, Unrecognized, code, "example for %s is unrecognized", doc.Name)
		assert.NotEqual(t, EmptyInstruction, code, "example for %s is empty", doc.Name)
	}
}

// Examples must exercise the rule they document, not a broader rule
// earlier in the table.
func TestCatalogExamplesHitOwnRule(t *testing.T) {
	e := New()

	for _, doc := range e.Catalog() {
		rule, _ := e.match(Normalize(doc.Example))
		require.NotNil(t, rule, "example for %s matched nothing", doc.Name)
		assert.Equal(t, doc.Name, rule.Name, "example %q", doc.Example)
	}
}

func TestSuggest(t *testing.T) {
	e := New()

	got := e.Suggest("print lst", 3)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "print list")
	assert.LessOrEqual(t, len(got), 3)

	// Deterministic for a fixed input.
	assert.Equal(t, got, e.Suggest("print lst", 3))

	assert.Nil(t, e.Suggest("", 3))
	assert.Nil(t, e.Suggest("print list", 0))
}
