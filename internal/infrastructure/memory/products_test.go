package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GetAndList(t *testing.T) {
	c := NewCatalog(SeedProducts())

	products := c.List()
	require.Len(t, products, 6)

	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Latte Vainilla", p.Name)
	assert.Empty(t, p.ImageURL)

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestCatalog_SetImageURLCaches(t *testing.T) {
	c := NewCatalog(SeedProducts())

	require.True(t, c.SetImageURL("2", "data:image/jpeg;base64,xyz"))
	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "data:image/jpeg;base64,xyz", p.ImageURL)

	assert.False(t, c.SetImageURL("999", "whatever"))
}
