package sections

import (
	"fmt"
	"strings"

	"github.com/niko9090/glos-italy-website-sub000/internal/constants"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

// Divider is the derived transition between two adjacent sections. It is
// recomputed on every render and never stored.
type Divider struct {
	Style     string
	FromColor string
	ToColor   string
	Flipped   bool
}

// None reports whether the divider should be omitted entirely.
func (d Divider) None() bool {
	return d.Style == constants.DividerNone
}

// SectionBackground resolves the effective background category of a section:
// the declared value when it is a known category, otherwise the per-type
// default, otherwise white.
func SectionBackground(section models.Section) string {
	if background := constants.NormaliseBackground(section.Background); background != "" {
		return background
	}
	return constants.DefaultBackgroundFor(section.Type)
}

// ResolveDivider computes the transition from one section into its successor.
// The function is pure and total: every pair of sections yields a defined
// divider.
func ResolveDivider(from, to models.Section) Divider {
	fromBackground := SectionBackground(from)
	toBackground := SectionBackground(to)

	style := dividerStyle(fromBackground, toBackground)

	return Divider{
		Style:     style,
		FromColor: constants.BackgroundColor(fromBackground),
		ToColor:   constants.BackgroundColor(toBackground),
		Flipped:   style != constants.DividerNone && constants.IsStrongBackground(fromBackground),
	}
}

// dividerStyle applies the transition rules in order. The order matters: the
// equality check wins over the strong set, and the wave pair is only reached
// when neither side is strong.
func dividerStyle(from, to string) string {
	if from == to {
		return constants.DividerNone
	}
	if constants.IsStrongBackground(from) || constants.IsStrongBackground(to) {
		return constants.DividerCurve
	}
	if (from == constants.BackgroundWhite && to == constants.BackgroundGray) ||
		(from == constants.BackgroundGray && to == constants.BackgroundWhite) {
		return constants.DividerWave
	}
	return constants.DividerGradientFade
}

// renderDivider produces the divider markup placed between two sections. The
// shape itself is drawn by the theme CSS; the markup carries the style, the
// two boundary colours and the flip flag.
func renderDivider(prefix string, divider Divider) string {
	if divider.None() {
		return ""
	}

	classes := []string{
		fmt.Sprintf("%s__divider", prefix),
		fmt.Sprintf("%s__divider--%s", prefix, divider.Style),
	}
	if divider.Flipped {
		classes = append(classes, fmt.Sprintf("%s__divider--flipped", prefix))
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + strings.Join(classes, " ") + `"`)
	sb.WriteString(` aria-hidden="true"`)
	sb.WriteString(` style="--divider-from:` + divider.FromColor + `;--divider-to:` + divider.ToColor + `"`)
	sb.WriteString(`></div>`)
	return sb.String()
}
