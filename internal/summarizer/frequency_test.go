package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_CapsSentences(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Refunds are not offered. Trials are free for thirty days. Refunds were requested often. Support answers within a day. Billing happens monthly."

	summary, err := s.Summarize(text, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
	assert.LessOrEqual(t, strings.Count(summary, "."), 2)
}

func TestSummarize_NoSentencePunctuation(t *testing.T) {
	s := NewFrequencySummarizer()
	summary, err := s.Summarize("just a fragment without punctuation", 3)
	require.NoError(t, err)
	assert.Equal(t, "just a fragment without punctuation", summary)
}

func TestSummarize_PreservesOriginalOrder(t *testing.T) {
	s := NewFrequencySummarizer()
	text := "Alpha topic sentence one. Beta filler. Alpha topic sentence two."
	summary, err := s.Summarize(text, 2)
	require.NoError(t, err)

	first := strings.Index(summary, "one")
	second := strings.Index(summary, "two")
	if first >= 0 && second >= 0 {
		assert.Less(t, first, second, "selected sentences keep document order")
	}
}
