package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"sendero-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	loginPage = "login.html"
	indexPage = "index.html"
)

// SiteHandler serves the pre-built pages under the site directory. Paths
// are resolved as "/x" -> x, x.html, x/index.html, then the root index.
type SiteHandler struct {
	dir string
}

func NewSiteHandler(dir string) *SiteHandler {
	return &SiteHandler{dir: dir}
}

func (h *SiteHandler) Login(c *gin.Context) {
	h.serveFile(c, loginPage)
}

// NotFound is the catch-all for unmatched routes. API paths and non-GET
// requests get a JSON 404; everything else is a page lookup.
func (h *SiteHandler) NotFound(c *gin.Context) {
	method := c.Request.Method
	if strings.HasPrefix(c.Request.URL.Path, "/api") || (method != http.MethodGet && method != http.MethodHead) {
		c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, "Not found", nil))
		return
	}

	rel := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
	for _, candidate := range candidates(rel) {
		if h.isFile(candidate) {
			h.serveFile(c, candidate)
			return
		}
	}
	h.serveFile(c, indexPage)
}

func candidates(rel string) []string {
	if rel == "" {
		return []string{indexPage}
	}
	return []string{rel, rel + ".html", path.Join(rel, indexPage)}
}

func (h *SiteHandler) isFile(rel string) bool {
	info, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

func (h *SiteHandler) serveFile(c *gin.Context, rel string) {
	full := filepath.Join(h.dir, filepath.FromSlash(rel))
	if !h.isFile(rel) {
		c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, "Not found", nil))
		return
	}
	c.File(full)
}
