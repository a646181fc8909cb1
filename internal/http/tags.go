package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/auth"
	"github.com/colllect/colllect/internal/storage"
)

var errTagExists = errors.New("tag already exists")

// TagsController serves the per-colllection tag endpoints.
type TagsController struct {
	store storage.Store
}

// NewTagsController creates a new controller.
func NewTagsController(store storage.Store) *TagsController {
	return &TagsController{store: store}
}

// CreateTag creates a colllection tag from the "name" form field.
func (tc *TagsController) CreateTag(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	name := c.PostForm("name")
	if name == "" {
		respondBadRequest(c, "tag name is required")
		return
	}

	tags, err := tc.store.ListTags(email, colllection)
	if err != nil {
		tc.respondStoreError(c, err)
		return
	}
	for _, tag := range tags {
		if tag.Name == name {
			respondConflict(c, errTagExists.Error())
			return
		}
	}

	tags = append(tags, storage.Tag{Name: name})
	if err := tc.store.SaveTags(email, colllection, tags); err != nil {
		tc.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, storage.Tag{Name: name})
}

// ListTags returns all tags of a colllection.
func (tc *TagsController) ListTags(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tags, err := tc.store.ListTags(email, colllection)
	if err != nil {
		tc.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GetTag returns a single tag by its encoded name.
func (tc *TagsController) GetTag(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	name, err := decodePathParam(c, "encodedTagName")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tags, err := tc.store.ListTags(email, colllection)
	if err != nil {
		tc.respondStoreError(c, err)
		return
	}
	for _, tag := range tags {
		if tag.Name == name {
			c.JSON(http.StatusOK, tag)
			return
		}
	}
	respondNotFound(c, "tag not found")
}

// UpdateTag renames a tag; the new name comes from the "name" form field.
func (tc *TagsController) UpdateTag(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	oldName, err := decodePathParam(c, "encodedTagName")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	newName := c.PostForm("name")
	if newName == "" {
		respondBadRequest(c, "tag name is required")
		return
	}

	tags, err := tc.store.ListTags(email, colllection)
	if err != nil {
		tc.respondStoreError(c, err)
		return
	}

	found := false
	for i, tag := range tags {
		if tag.Name == newName && newName != oldName {
			respondConflict(c, errTagExists.Error())
			return
		}
		if tag.Name == oldName {
			tags[i].Name = newName
			found = true
		}
	}
	if !found {
		respondNotFound(c, "tag not found")
		return
	}

	if err := tc.store.SaveTags(email, colllection, tags); err != nil {
		tc.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, storage.Tag{Name: newName})
}

// DeleteTag removes a tag from a colllection.
func (tc *TagsController) DeleteTag(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	name, err := decodePathParam(c, "encodedTagName")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tags, err := tc.store.ListTags(email, colllection)
	if err != nil {
		tc.respondStoreError(c, err)
		return
	}

	kept := make([]storage.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.Name != name {
			kept = append(kept, tag)
		}
	}
	if len(kept) == len(tags) {
		respondNotFound(c, "tag not found")
		return
	}

	if err := tc.store.SaveTags(email, colllection, kept); err != nil {
		tc.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (tc *TagsController) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		respondBadRequest(c, "invalid colllection name")
	case errors.Is(err, storage.ErrColllectionNotFound):
		respondNotFound(c, "colllection not found")
	default:
		respondInternalError(c, "tag storage error")
	}
}
