package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "basic-prompt", items[0].ID)
	assert.Equal(t, "team-prompt", items[2].ID)

	item, ok := c.Find("pro-prompt")
	assert.True(t, ok)
	assert.Equal(t, int64(250), item.Points)

	_, ok = c.Find("missing")
	assert.False(t, ok)

	items[0].Points = 1
	again, _ := c.Find("basic-prompt")
	assert.Equal(t, int64(100), again.Points, "Items returns a copy")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		items         []domain.CatalogItem
		expectedError error
	}{
		{
			name:  "Valid items",
			items: []domain.CatalogItem{{ID: "a", Name: "A", Points: 1}},
		},
		{
			name:          "Empty catalog",
			items:         nil,
			expectedError: ErrEmptyCatalog,
		},
		{
			name:          "Zero points",
			items:         []domain.CatalogItem{{ID: "a", Name: "A", Points: 0}},
			expectedError: ErrInvalidItem,
		},
		{
			name:          "Missing id",
			items:         []domain.CatalogItem{{Name: "A", Points: 10}},
			expectedError: ErrInvalidItem,
		},
		{
			name: "Duplicate id",
			items: []domain.CatalogItem{
				{ID: "a", Name: "A", Points: 10},
				{ID: "a", Name: "B", Points: 20},
			},
			expectedError: ErrDuplicateItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.items)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, c)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, c)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`items:
  - id: sticker
    name: Sticker Pack
    points: 20
    description: A set of stickers
  - id: theme
    name: Dark Theme
    points: 75
`), 0o600))

	c, err := Load(valid)
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogItem{
		{ID: "sticker", Name: "Sticker Pack", Points: 20, Description: "A set of stickers"},
		{ID: "theme", Name: "Dark Theme", Points: 75},
	}, c.Items())

	c, err = Load("")
	require.NoError(t, err)
	assert.Len(t, c.Items(), 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("items: [unclosed"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("items:\n  - {id: x, name: X, points: -5}\n"), 0o600))
	_, err = Load(negative)
	assert.ErrorIs(t, err, ErrInvalidItem)
}
