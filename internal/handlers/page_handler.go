package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
	"github.com/niko9090/glos-italy-website-sub000/internal/middleware"
	"github.com/niko9090/glos-italy-website-sub000/internal/sections"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
	"github.com/niko9090/glos-italy-website-sub000/pkg/validator"
)

const pageLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}} — {{.SiteName}}</title>
{{if .Description}}<meta name="description" content="{{.Description}}" />{{end}}
<link rel="stylesheet" href="/static/css/site.css" />
</head>
<body{{if .Editing}} data-editing="true"{{end}}>
<main class="page">
{{.Content}}
</main>
{{range .Scripts}}<script src="{{.}}" defer></script>
{{end}}</body>
</html>
`

// PageHandler renders public pages from their section lists.
type PageHandler struct {
	cfg         *config.Config
	pageService *service.PageService
	registry    *sections.Registry
	layout      *template.Template
}

// renderContext adapts the validator package to the section renderers.
type renderContext struct{}

func (renderContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

func NewPageHandler(cfg *config.Config, pageService *service.PageService, registry *sections.Registry) (*PageHandler, error) {
	layout, err := template.New("page").Parse(pageLayout)
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		cfg:         cfg,
		pageService: pageService,
		registry:    registry,
		layout:      layout,
	}, nil
}

// RenderPage serves the page routed at the request path. Editors carrying a
// valid token see draft content and the overlay annotations.
func (h *PageHandler) RenderPage(c *gin.Context) {
	path := c.Request.URL.Path

	editing := middleware.IsEditor(c, h.cfg)

	page, err := h.pageService.GetByPath(path, editing)
	if err != nil {
		c.String(http.StatusNotFound, "Page not found")
		return
	}

	content, scripts := h.registry.Compose(renderContext{}, page.Sections, sections.ComposeOptions{
		Prefix:     "page",
		Editing:    editing,
		DocumentID: strconv.FormatUint(uint64(page.ID), 10),
	})

	if editing {
		scripts = append(scripts, "/static/js/section-manager.js")
	}

	data := struct {
		Title       string
		SiteName    string
		Description string
		Editing     bool
		Content     template.HTML
		Scripts     []string
	}{
		Title:       page.Title,
		SiteName:    h.cfg.SiteName,
		Description: page.Description,
		Editing:     editing,
		Content:     content,
		Scripts:     scripts,
	}

	var buf bytes.Buffer
	if err := h.layout.Execute(&buf, data); err != nil {
		logger.Error(err, "Failed to render page layout", map[string]interface{}{"path": path})
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ListPages returns the published pages as JSON, used by the navigation
// builder of the front end.
func (h *PageHandler) ListPages(c *gin.Context) {
	pages, err := h.pageService.GetAll()
	if err != nil {
		logger.Error(err, "Failed to list pages", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pages"})
		return
	}

	type pageSummary struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Path  string `json:"path"`
		Order int    `json:"order"`
	}

	summaries := make([]pageSummary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, pageSummary{
			ID:    page.ID,
			Title: page.Title,
			Path:  page.Path,
			Order: page.Order,
		})
	}

	c.JSON(http.StatusOK, gin.H{"pages": summaries})
}
