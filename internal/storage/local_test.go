package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLocalStore_CreateAndListColllections(t *testing.T) {
	store := newTestStore(t)

	names, err := store.ListColllections("a@x.com")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))
	require.NoError(t, store.CreateColllection("a@x.com", "articles"))

	names, err = store.ListColllections("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"articles", "recipes"}, names)
}

func TestLocalStore_CreateColllection_Duplicate(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))
	assert.ErrorIs(t, store.CreateColllection("a@x.com", "recipes"), ErrColllectionExists)
}

func TestLocalStore_UserIsolation(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))

	names, err := store.ListColllections("b@x.com")
	require.NoError(t, err)
	assert.Empty(t, names, "one user's colllections must not leak to another")
}

func TestLocalStore_InvalidNames(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", ".", "..", "a/b", "a\\b", ".hidden"} {
		assert.ErrorIs(t, store.CreateColllection("a@x.com", name), ErrInvalidName, "name %q", name)
	}

	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))
	err := store.SaveElement("a@x.com", "recipes", "../escape", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestLocalStore_ElementLifecycle(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))

	require.NoError(t, store.SaveElement("a@x.com", "recipes", "soup.md", strings.NewReader("tomato soup")))

	elements, err := store.ListElements("a@x.com", "recipes")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "soup.md", elements[0].Name)
	assert.Equal(t, int64(len("tomato soup")), elements[0].Size)

	rc, err := store.OpenElement("a@x.com", "recipes", "soup.md")
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "tomato soup", string(content))

	require.NoError(t, store.DeleteElement("a@x.com", "recipes", "soup.md"))

	elements, err = store.ListElements("a@x.com", "recipes")
	require.NoError(t, err)
	assert.Empty(t, elements)

	_, err = store.OpenElement("a@x.com", "recipes", "soup.md")
	assert.ErrorIs(t, err, ErrElementNotFound)
}

func TestLocalStore_MissingColllection(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ListElements("a@x.com", "nope")
	assert.ErrorIs(t, err, ErrColllectionNotFound)

	err = store.SaveElement("a@x.com", "nope", "file.md", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrColllectionNotFound)

	_, err = store.ListTags("a@x.com", "nope")
	assert.ErrorIs(t, err, ErrColllectionNotFound)

	err = store.SaveTags("a@x.com", "nope", []Tag{{Name: "t"}})
	assert.ErrorIs(t, err, ErrColllectionNotFound)
}

func TestLocalStore_Tags(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.CreateColllection("a@x.com", "recipes"))

	tags, err := store.ListTags("a@x.com", "recipes")
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, store.SaveTags("a@x.com", "recipes", []Tag{{Name: "dinner"}, {Name: "vegan"}}))

	tags, err = store.ListTags("a@x.com", "recipes")
	require.NoError(t, err)
	assert.Equal(t, []Tag{{Name: "dinner"}, {Name: "vegan"}}, tags)

	// The tags file must not show up as an element.
	elements, err := store.ListElements("a@x.com", "recipes")
	require.NoError(t, err)
	assert.Empty(t, elements)
}
