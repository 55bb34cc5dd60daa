package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/blobstore"
)

// FilesHandler serves stored objects back under the same reference scheme
// Upload hands out: /files/{bucket}/{path...}. Read-only; uploads go
// through the engine operations.
type FilesHandler struct {
	store *blobstore.Store
}

func NewFilesHandler(e *echo.Echo, store *blobstore.Store) *FilesHandler {
	handler := &FilesHandler{store: store}
	e.GET("/files/:bucket/*", handler.getFile)
	return handler
}

func (h *FilesHandler) getFile(c echo.Context) error {
	data, contentType, err := h.store.Get(c.Param("bucket"), c.Param("*"))
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "file not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read file")
	}

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Blob(http.StatusOK, contentType, data)
}
