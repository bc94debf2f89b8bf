package constants

import "strings"

const (
	// BackgroundWhite is the plain page background.
	BackgroundWhite = "white"
	// BackgroundGray is the light neutral background used for alternating blocks.
	BackgroundGray = "gray"
	// BackgroundPrimary is the brand-blue background.
	BackgroundPrimary = "primary"
	// BackgroundDark is the near-black background used for hero and footer blocks.
	BackgroundDark = "dark"
	// BackgroundGradient is the dark-to-primary gradient background.
	BackgroundGradient = "gradient"
	// BackgroundMetal is the brushed-steel light background.
	BackgroundMetal = "metal"
	// BackgroundMetalDark is the darker steel background.
	BackgroundMetalDark = "metal-dark"
)

const (
	// DividerNone renders no transition between two sections.
	DividerNone = "none"
	// DividerCurve renders a curved sweep, used against strong backgrounds.
	DividerCurve = "curve"
	// DividerWave renders a soft wave between the white and gray backgrounds.
	DividerWave = "wave"
	// DividerGradientFade renders a straight colour fade, the fallback style.
	DividerGradientFade = "gradient-fade"
)

const (
	// DefaultSectionBackground applies when a section declares no background
	// and its type has no documented default.
	DefaultSectionBackground = BackgroundWhite

	// DefaultContactSubject is used when a contact submission carries no subject.
	DefaultContactSubject = "New enquiry from the website"

	// MaxContactMessageLength caps the free-text message field of the contact form.
	MaxContactMessageLength = 8000
)

var backgroundColors = map[string]string{
	BackgroundWhite:     "#ffffff",
	BackgroundGray:      "#f4f5f7",
	BackgroundPrimary:   "#0f4da8",
	BackgroundDark:      "#10151c",
	BackgroundGradient:  "#0a2540",
	BackgroundMetal:     "#d7dbe0",
	BackgroundMetalDark: "#4a5560",
}

var strongBackgrounds = map[string]bool{
	BackgroundPrimary:  true,
	BackgroundDark:     true,
	BackgroundGradient: true,
}

var defaultSectionBackgrounds = map[string]string{
	"hero":     BackgroundDark,
	"carousel": BackgroundWhite,
	"features": BackgroundWhite,
	"gallery":  BackgroundWhite,
	"faq":      BackgroundGray,
	"contact":  BackgroundGray,
	"map":      BackgroundWhite,
	"timeline": BackgroundWhite,
	"pricing":  BackgroundGray,
	"stats":    BackgroundPrimary,
	"cta":      BackgroundPrimary,
	"logos":    BackgroundGray,
}

var backgroundOptions = []string{
	BackgroundWhite,
	BackgroundGray,
	BackgroundPrimary,
	BackgroundDark,
	BackgroundGradient,
	BackgroundMetal,
	BackgroundMetalDark,
}

// BackgroundOptions returns the allowed background categories.
// A copy of the slice is returned to prevent external mutation of the internal list.
func BackgroundOptions() []string {
	options := make([]string, len(backgroundOptions))
	copy(options, backgroundOptions)
	return options
}

// NormaliseBackground returns a known background category or the empty string.
func NormaliseBackground(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if _, ok := backgroundColors[trimmed]; ok {
		return trimmed
	}
	return ""
}

// DefaultBackgroundFor returns the documented default background for a section
// type, falling back to the global default for unknown types.
func DefaultBackgroundFor(sectionType string) string {
	trimmed := strings.TrimSpace(strings.ToLower(sectionType))
	if background, ok := defaultSectionBackgrounds[trimmed]; ok {
		return background
	}
	return DefaultSectionBackground
}

// BackgroundColor maps a background category to its boundary colour.
// The table is closed; unknown categories resolve to the white boundary.
func BackgroundColor(category string) string {
	if color, ok := backgroundColors[category]; ok {
		return color
	}
	return backgroundColors[BackgroundWhite]
}

// IsStrongBackground reports whether the category belongs to the strong set
// that always forces a curve divider.
func IsStrongBackground(category string) bool {
	return strongBackgrounds[category]
}
