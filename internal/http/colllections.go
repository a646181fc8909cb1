package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colllect/colllect/internal/auth"
	"github.com/colllect/colllect/internal/storage"
)

// ColllectionsController serves the colllection and element endpoints.
// All routes run behind the authentication middleware; the owner is
// always the authenticated caller.
type ColllectionsController struct {
	store storage.Store
}

// NewColllectionsController creates a new controller.
func NewColllectionsController(store storage.Store) *ColllectionsController {
	return &ColllectionsController{store: store}
}

// Colllection is the API representation of a colllection.
type Colllection struct {
	Name        string `json:"name"`
	EncodedPath string `json:"encoded_colllection_path"`
}

// ListColllections returns the caller's colllections.
func (cc *ColllectionsController) ListColllections(c *gin.Context) {
	email := auth.GetEmail(c)
	names, err := cc.store.ListColllections(email)
	if err != nil {
		respondInternalError(c, "failed to list colllections")
		return
	}

	colllections := make([]Colllection, 0, len(names))
	for _, name := range names {
		colllections = append(colllections, Colllection{
			Name:        name,
			EncodedPath: encodePathSegment(name),
		})
	}
	c.JSON(http.StatusOK, colllections)
}

// CreateColllection creates a colllection from the "name" form field.
func (cc *ColllectionsController) CreateColllection(c *gin.Context) {
	email := auth.GetEmail(c)
	name := c.PostForm("name")

	err := cc.store.CreateColllection(email, name)
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		respondBadRequest(c, "invalid colllection name")
	case errors.Is(err, storage.ErrColllectionExists):
		respondConflict(c, "colllection already exists")
	case err != nil:
		respondInternalError(c, "failed to create colllection")
	default:
		c.JSON(http.StatusCreated, Colllection{
			Name:        name,
			EncodedPath: encodePathSegment(name),
		})
	}
}

// ListElements returns the files inside a colllection.
func (cc *ColllectionsController) ListElements(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	elements, err := cc.store.ListElements(email, colllection)
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		respondBadRequest(c, "invalid colllection name")
	case errors.Is(err, storage.ErrColllectionNotFound):
		respondNotFound(c, "colllection not found")
	case err != nil:
		respondInternalError(c, "failed to list elements")
	default:
		c.JSON(http.StatusOK, elements)
	}
}

// UploadElement stores a multipart file upload into a colllection.
func (cc *ColllectionsController) UploadElement(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "missing file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, "failed to read upload")
		return
	}
	defer file.Close()

	err = cc.store.SaveElement(email, colllection, fileHeader.Filename, file)
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		respondBadRequest(c, "invalid element name")
	case errors.Is(err, storage.ErrColllectionNotFound):
		respondNotFound(c, "colllection not found")
	case err != nil:
		respondInternalError(c, "failed to save element")
	default:
		c.JSON(http.StatusCreated, gin.H{"name": fileHeader.Filename})
	}
}

// DeleteElement removes a file from a colllection.
func (cc *ColllectionsController) DeleteElement(c *gin.Context) {
	email := auth.GetEmail(c)
	colllection, err := decodePathParam(c, "encodedColllectionPath")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	element, err := decodePathParam(c, "encodedElementName")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	err = cc.store.DeleteElement(email, colllection, element)
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		respondBadRequest(c, "invalid element name")
	case errors.Is(err, storage.ErrElementNotFound):
		respondNotFound(c, "element not found")
	case err != nil:
		respondInternalError(c, "failed to delete element")
	default:
		c.Status(http.StatusNoContent)
	}
}
