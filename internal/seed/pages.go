package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

//go:embed data/pages/*.json
var defaultPagesFS embed.FS

// EnsureDefaultPages loads the embedded page definitions and creates any that
// do not exist yet. Existing pages are never overwritten, so editor changes
// survive restarts.
func EnsureDefaultPages(pageService *service.PageService) {
	entries, err := fs.ReadDir(defaultPagesFS, "data/pages")
	if err != nil {
		logger.Error(err, "Failed to read embedded page definitions", nil)
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		data, err := defaultPagesFS.ReadFile(fmt.Sprintf("data/pages/%s", name))
		if err != nil {
			logger.Error(err, "Failed to read embedded page file", map[string]interface{}{"file": name})
			continue
		}

		var definitions []models.CreatePageRequest
		if err := json.Unmarshal(data, &definitions); err != nil {
			logger.Error(err, "Failed to parse embedded page file", map[string]interface{}{"file": name})
			continue
		}

		for _, definition := range definitions {
			ensurePage(pageService, definition, name)
		}
	}
}

func ensurePage(pageService *service.PageService, definition models.CreatePageRequest, source string) {
	exists, err := pageService.ExistsBySlug(definition.Slug)
	if err != nil {
		logger.Error(err, "Failed to check default page", map[string]interface{}{
			"slug": definition.Slug,
			"file": source,
		})
		return
	}
	if exists {
		return
	}

	if _, err := pageService.Create(definition); err != nil {
		logger.Error(err, "Failed to create default page", map[string]interface{}{
			"slug": definition.Slug,
			"file": source,
		})
		return
	}

	logger.Info("Created default page", map[string]interface{}{
		"slug": definition.Slug,
		"file": source,
	})
}
