package http

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errBadEncoding = errors.New("invalid encoded path segment")

// decodePathParam decodes a base64url-encoded path segment. Colllection
// names and tag names travel encoded so they can hold any character.
func decodePathParam(c *gin.Context, name string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(c.Param(name))
	if err != nil {
		return "", errBadEncoding
	}
	return string(decoded), nil
}

// encodePathSegment is the inverse of decodePathParam, used when
// responses echo encoded locations back.
func encodePathSegment(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

func respondInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
