package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptSeedsNamespace(t *testing.T) {
	r := New("")
	script := r.Script("my_list.append(6)")

	// The prelude must come first so the snippet sees its variables.
	require.True(t, strings.HasSuffix(script, "my_list.append(6)\n"))
	for _, decl := range []string{
		"my_list = []",
		`my_string = ""`,
		"my_dict = {}",
		`user_input = ""`,
	} {
		assert.Contains(t, script, decl)
		assert.Less(t, strings.Index(script, decl), strings.Index(script, "my_list.append(6)"))
	}
}

func TestScriptEndsWithNewline(t *testing.T) {
	r := New("")
	assert.True(t, strings.HasSuffix(r.Script("print(1)"), "\n"))
}

func TestResolvePythonExplicit(t *testing.T) {
	r := New("/opt/python/bin/python3.12")
	got, err := r.resolvePython()
	require.NoError(t, err)
	assert.Equal(t, "/opt/python/bin/python3.12", got)
}
