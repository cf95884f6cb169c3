package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
)

func newTestServer() *Server {
	return NewServer(engine.New(), "test")
}

func TestHandleTranslate(t *testing.T) {
	s := newTestServer()

	out, err := s.handleTranslate(TranslateInput{Instruction: "print hello"})
	require.NoError(t, err)
	assert.Equal(t, `print("hello")`, out.Code)
	assert.True(t, out.Recognized)
}

func TestHandleTranslateUnrecognized(t *testing.T) {
	s := newTestServer()

	out, err := s.handleTranslate(TranslateInput{Instruction: "do a backflip"})
	require.NoError(t, err, "unrecognized input is not a tool error")
	assert.Equal(t, engine.Unrecognized, out.Code)
	assert.False(t, out.Recognized)
}

func TestHandleTranslateMalformed(t *testing.T) {
	s := newTestServer()

	_, err := s.handleTranslate(TranslateInput{Instruction: "create dictionary name john"})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrMalformed)
}

func TestHandleListCommands(t *testing.T) {
	s := newTestServer()

	out := s.handleListCommands()
	require.NotEmpty(t, out.Commands)
	assert.Equal(t, engine.New().Catalog(), out.Commands)
}
