package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRelevanceCounts(t *testing.T) {
	f := NewFilter([]string{"ai"}, nil)

	assert.Equal(t, 0, f.Relevance("local bakery wins pie contest"))
	assert.Positive(t, f.Relevance("OpenAI ships a new GPT model release"))
}

func TestFilterCaseInsensitive(t *testing.T) {
	f := NewFilter([]string{"crypto"}, nil)

	assert.Equal(t, f.Relevance("BITCOIN hits new high"), f.Relevance("bitcoin hits new high"))
}

func TestFilterExtraKeywords(t *testing.T) {
	f := NewFilter(nil, []string{"quantum"})

	assert.Equal(t, 1, f.Relevance("quantum breakthrough announced"))
}

func TestFilterUnknownNicheMatchesNothing(t *testing.T) {
	f := NewFilter([]string{"underwater-basket-weaving"}, nil)

	assert.Equal(t, 0, f.Relevance("anything at all"))
}
