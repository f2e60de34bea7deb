package web

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// computeETags hashes every embedded asset once at startup.
func computeETags(fsys fs.FS) (map[string]string, error) {
	etags := map[string]string{}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		etags[path] = `W/"` + hex.EncodeToString(h.Sum(nil))[:32] + `"`
		return nil
	})
	return etags, err
}

// asset serves the embedded stylesheet and script with long-lived caching.
// The ETag header lets http.ServeFileFS answer conditional requests with 304.
func (s *Server) asset(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	et, ok := s.etags[name]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.Header("Vary", "Accept-Encoding")
	c.Header("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
	c.Header("ETag", et)
	http.ServeFileFS(c.Writer, c.Request, s.assets, name)
}
