package server

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/respond"
)

// SignedFileStore serves locally stored objects through signed URLs. The S3
// backend presigns directly against the bucket and never uses this route.
type SignedFileStore interface {
	VerifySignedRequest(storageKey, expRaw, sig string) error
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// registerFileRoutes attaches the public signed-file route.
func registerFileRoutes(rg *gin.RouterGroup, store SignedFileStore) {
	rg.GET("/files/*key", func(c *gin.Context) {
		serveSignedFile(c, store)
	})
}

func serveSignedFile(c *gin.Context, store SignedFileStore) {
	storageKey := strings.TrimPrefix(c.Param("key"), "/")
	exp := c.Query("exp")
	sig := c.Query("sig")
	if storageKey == "" || exp == "" || sig == "" {
		respond.Error(c, http.StatusForbidden, "forbidden", "missing signature")
		return
	}

	if err := store.VerifySignedRequest(storageKey, exp, sig); err != nil {
		respond.Error(c, http.StatusForbidden, "forbidden", "invalid or expired link")
		return
	}

	rc, err := store.Open(c.Request.Context(), storageKey)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found")
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(storageKey))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "inline")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers are already written; nothing useful left to send.
		return
	}
}
