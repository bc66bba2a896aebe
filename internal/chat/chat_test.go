package chat

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls int
	msgs  []Turn
	reply string
	err   error
}

func (f *fakeGenerator) Complete(_ context.Context, msgs []Turn) (string, error) {
	f.calls++
	f.msgs = msgs
	return f.reply, f.err
}

func TestCompose_TwoMessages(t *testing.T) {
	msgs := Compose("You are a test persona.", "Policy A: no refunds", "can I get a refund?")
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.True(t, strings.HasPrefix(msgs[0].Content, "You are a test persona."))
	assert.Contains(t, msgs[0].Content, "--- DATA CONTEXT ---")
	assert.True(t, strings.HasSuffix(msgs[0].Content, "Policy A: no refunds"))
	assert.Equal(t, "can I get a refund?", msgs[1].Content)
}

func TestRespond_EmptyContextShortCircuits(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be used"}
	reply := Respond(context.Background(), gen, "prompt", "", "hello")
	assert.Equal(t, NoDataReply, reply)
	assert.Zero(t, gen.calls, "generator must not be called without context")

	reply = Respond(context.Background(), gen, "prompt", "   \n", "hello")
	assert.Equal(t, NoDataReply, reply)
	assert.Zero(t, gen.calls)
}

func TestRespond_ForwardsToGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "the policy says no refunds"}
	reply := Respond(context.Background(), gen, "prompt", "Policy A: no refunds", "refund?")
	assert.Equal(t, "the policy says no refunds", reply)
	require.Equal(t, 1, gen.calls)
	require.Len(t, gen.msgs, 2)
	assert.Equal(t, "refund?", gen.msgs[1].Content)
}

func TestRespond_SurfacesGenerationError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("invalid api key")}
	reply := Respond(context.Background(), gen, "prompt", "some context", "question")
	assert.Equal(t, "Error: invalid api key", reply)
}

func TestSession_AppendOnlyOrder(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "first")
	s.Append(RoleAssistant, "second")
	s.Append(RoleUser, "third")

	turns := s.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, Turn{Role: RoleUser, Content: "first"}, turns[0])
	assert.Equal(t, Turn{Role: RoleAssistant, Content: "second"}, turns[1])
	assert.Equal(t, Turn{Role: RoleUser, Content: "third"}, turns[2])
	assert.Equal(t, 3, s.Len())
}

func TestSession_TurnsReturnsCopy(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "original")
	turns := s.Turns()
	turns[0].Content = "mutated"
	assert.Equal(t, "original", s.Turns()[0].Content)
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("RAGCHAT_TEST_KEY", "")
	_, err := NewClient(ClientConfig{APIKeyEnv: "RAGCHAT_TEST_KEY", Model: "test-model"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAGCHAT_TEST_KEY")
}

func TestNewClient_WithKey(t *testing.T) {
	t.Setenv("RAGCHAT_TEST_KEY", "sk-test")
	c, err := NewClient(ClientConfig{APIKeyEnv: "RAGCHAT_TEST_KEY", Model: "test-model"})
	require.NoError(t, err)
	assert.NotNil(t, c)
	// Key must come from the environment only, never stored elsewhere.
	assert.Equal(t, "sk-test", os.Getenv("RAGCHAT_TEST_KEY"))
}
