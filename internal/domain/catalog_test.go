package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	c, err := NewCategory(CategoryParams{Name: "Documentary", IsActive: true})
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())
	c.Activate()
	assert.True(t, c.IsActive())

	require.NoError(t, c.Update("Documentaries", "Non-fiction"))
	assert.Equal(t, "Non-fiction", c.Description())

	err = c.Update("Documentaries", "x")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Non-fiction", c.Description())

	_, err = NewCategory(CategoryParams{Name: "ab"})
	assert.True(t, IsValidationError(err))
}

func TestGenre(t *testing.T) {
	g, err := NewGenre(GenreParams{Name: "Drama", CategoryIDs: []string{"c1", "c1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, g.CategoryIDs())

	g.AddCategory("c2")
	g.RemoveCategory("c1")
	assert.Equal(t, []string{"c2"}, g.CategoryIDs())

	g.ReplaceCategories(nil)
	assert.Empty(t, g.CategoryIDs())

	assert.Error(t, g.Update(""))
	assert.Equal(t, "Drama", g.Name())
}

func TestCastMember(t *testing.T) {
	m, err := NewCastMember(CastMemberParams{Name: "Carrie-Anne Moss", Type: CastMemberTypeActor})
	require.NoError(t, err)

	require.NoError(t, m.Update("Lana Wachowski", CastMemberTypeDirector))
	assert.Equal(t, CastMemberTypeDirector, m.Type())

	err = m.Update("Lana Wachowski", CastMemberType(0))
	assert.True(t, IsValidationError(err))
	assert.Equal(t, CastMemberTypeDirector, m.Type())
}
