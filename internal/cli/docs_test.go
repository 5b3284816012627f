package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTopics(t *testing.T) {
	topics := listTopics()
	assert.Contains(t, topics, "annotations")
	assert.Contains(t, topics, "batch-access")
	assert.Contains(t, topics, "formats")
}

func TestDocsListsTopics(t *testing.T) {
	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "annotations")
}

func TestDocsRendersTopic(t *testing.T) {
	out, err := execute(t, "docs", "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "phyloxml")
}

func TestDocsUnknownTopic(t *testing.T) {
	_, err := execute(t, "docs", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}
