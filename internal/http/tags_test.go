package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colllect/colllect/internal/storage"
)

func createTag(t *testing.T, router *gin.Engine, token, encodedPath, name string) {
	t.Helper()
	w := doForm(router, token, http.MethodPost, "/api/colllections/"+encodedPath+"/tags", url.Values{"name": {name}})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestTags_CreateAndList(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")

	createTag(t, router, token, encodedPath, "dinner")
	createTag(t, router, token, encodedPath, "vegan")

	w := doRequest(router, token, http.MethodGet, "/api/colllections/"+encodedPath+"/tags", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var tags []storage.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Equal(t, []storage.Tag{{Name: "dinner"}, {Name: "vegan"}}, tags)
}

func TestTags_CreateDuplicate(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")

	createTag(t, router, token, encodedPath, "dinner")
	w := doForm(router, token, http.MethodPost, "/api/colllections/"+encodedPath+"/tags", url.Values{"name": {"dinner"}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTags_CreateMissingName(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")

	w := doForm(router, token, http.MethodPost, "/api/colllections/"+encodedPath+"/tags", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTags_CreateInMissingColllection(t *testing.T) {
	router, token := newTestRouter(t)

	w := doForm(router, token, http.MethodPost, "/api/colllections/"+encodePathSegment("nope")+"/tags", url.Values{"name": {"dinner"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTags_Get(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")
	createTag(t, router, token, encodedPath, "dinner")

	w := doRequest(router, token, http.MethodGet, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dinner")

	w = doRequest(router, token, http.MethodGet, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("missing"), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTags_Rename(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")
	createTag(t, router, token, encodedPath, "dinner")

	w := doForm(router, token, http.MethodPut, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), url.Values{"name": {"supper"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, token, http.MethodGet, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("supper"), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, token, http.MethodGet, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTags_RenameConflict(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")
	createTag(t, router, token, encodedPath, "dinner")
	createTag(t, router, token, encodedPath, "vegan")

	w := doForm(router, token, http.MethodPut, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), url.Values{"name": {"vegan"}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTags_RenameMissing(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")

	w := doForm(router, token, http.MethodPut, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("missing"), url.Values{"name": {"anything"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTags_Delete(t *testing.T) {
	router, token := newTestRouter(t)
	encodedPath := createColllection(t, router, token, "recipes")
	createTag(t, router, token, encodedPath, "dinner")

	w := doRequest(router, token, http.MethodDelete, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, token, http.MethodDelete, "/api/colllections/"+encodedPath+"/tags/"+encodePathSegment("dinner"), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
