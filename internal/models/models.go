package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Page is one document of the public site: an ordered list of typed sections
// plus routing and publication metadata.
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Path        string `gorm:"uniqueIndex;not null" json:"path"`
	Description string `json:"description"`
	Published   bool   `gorm:"default:false" json:"published"`

	Sections PageSections `gorm:"type:jsonb" json:"sections"`

	Order int `gorm:"default:0" json:"order"`
}

// PageSections is the ordered section array stored as a jsonb column.
type PageSections []Section

// Section is one self-contained block of page content. Key is stable and
// unique within the owning page's section array; renderers treat the whole
// struct as read-only.
type Section struct {
	Key        string  `json:"key"`
	Type       string  `json:"type"`
	Background string  `json:"background,omitempty"`
	Settings   JSONMap `json:"settings,omitempty"`
}

// BackgroundOrDefault returns the declared background category when present.
// Resolution of per-type defaults lives in the sections package; this only
// reports what the document says.
func (s Section) BackgroundOrDefault(fallback string) string {
	if s.Background != "" {
		return s.Background
	}
	return fallback
}

func (ps *PageSections) Scan(value interface{}) error {
	if value == nil {
		*ps = PageSections{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PageSections")
	}

	if len(bytes) == 0 {
		*ps = PageSections{}
		return nil
	}

	var decoded []Section
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*ps = decoded
	return nil
}

func (ps PageSections) Value() (driver.Value, error) {
	if ps == nil {
		ps = PageSections{}
	}
	return json.Marshal(ps)
}

// JSONMap holds the open-ended, type-specific configuration of a section.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

// Setting is a single key/value pair of site configuration stored in the
// database, overriding environment defaults.
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
