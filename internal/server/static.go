package server

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-hobbies-api/internal/response"
)

const staticCacheControl = "public, max-age=3600"

// noRoute serves the built frontend from dir. API paths and unresolvable
// files get the 404 envelope; extension-less paths fall back to index.html
// so client-side routes can be reloaded.
func noRoute(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if dir != "" && !isAPIPath(urlPath) && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			clean := path.Clean("/" + urlPath)
			if file, ok := regularFile(dir, clean); ok {
				c.Header("Cache-Control", staticCacheControl)
				c.File(file)
				return
			}
			if path.Ext(clean) == "" {
				if index, ok := regularFile(dir, "/index.html"); ok {
					c.File(index)
					return
				}
			}
		}

		response.Error(c, http.StatusNotFound, fmt.Sprintf("Route %s %s not found", c.Request.Method, urlPath), nil)
	}
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}

// regularFile resolves a cleaned, slash-rooted URL path under dir.
func regularFile(dir, clean string) (string, bool) {
	file := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}
