package dotcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotcomponents/internal/domain"
	"dotcomponents/testdata/utils"
)

func TestNormalizeTags_PreservesOrderOneToOne(t *testing.T) {
	src := []domain.Tag{
		{ID: "profile/jane-smith", Type: "Contributor", Title: "Jane Smith", TwitterHandle: utils.Ptr("janesmith")},
		{ID: "tone/news", Type: "Tone", Title: "News"},
		{ID: "world/world", Type: "Keyword", Title: "World news"},
		{ID: "world/world", Type: "Keyword", Title: "World news"}, // duplicates survive
	}

	got := NormalizeTags(src)
	require.Len(t, got, 4)

	assert.Equal(t, "profile/jane-smith", got[0].Properties.ID)
	assert.Equal(t, "Contributor", got[0].Properties.TagType)
	assert.Equal(t, "Jane Smith", got[0].Properties.WebTitle)
	require.NotNil(t, got[0].Properties.TwitterHandle)
	assert.Equal(t, "janesmith", *got[0].Properties.TwitterHandle)

	assert.Nil(t, got[1].Properties.TwitterHandle)
	assert.Equal(t, "tone/news", got[1].Properties.ID)
	assert.Equal(t, got[2], got[3])
}

func TestNormalizeTags_EmptyIsNotNil(t *testing.T) {
	got := NormalizeTags(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeLinks(t *testing.T) {
	got := NormalizeLinks([]domain.Link{{Title: "World", URL: "/world"}})
	assert.Equal(t, []Link{{Title: "World", URL: "/world"}}, got)

	assert.NotNil(t, NormalizeLinks(nil))
}
