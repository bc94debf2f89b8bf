package sections

import (
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

func settingString(settings models.JSONMap, key string) string {
	if settings == nil {
		return ""
	}
	if value, ok := settings[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func settingBool(settings models.JSONMap, key string, fallback bool) bool {
	if settings == nil {
		return fallback
	}
	switch v := settings[key].(type) {
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(strings.ToLower(v))
		switch trimmed {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		default:
			return fallback
		}
	default:
		return fallback
	}
}

// settingItems extracts a list-of-objects field (slides, questions, tiers...)
// from the open-ended settings bag. Entries of unexpected shape are skipped.
func settingItems(settings models.JSONMap, key string) []map[string]interface{} {
	if settings == nil {
		return nil
	}

	raw, ok := settings[key].([]interface{})
	if !ok {
		return nil
	}

	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if item, ok := entry.(map[string]interface{}); ok {
			items = append(items, item)
		}
	}
	return items
}

func itemString(item map[string]interface{}, key string) string {
	if item == nil {
		return ""
	}
	if str, ok := item[key].(string); ok {
		return str
	}
	return ""
}
