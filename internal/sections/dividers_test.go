package sections

import (
	"testing"

	"github.com/niko9090/glos-italy-website-sub000/internal/constants"
	"github.com/niko9090/glos-italy-website-sub000/internal/models"
)

func sectionWithBackground(background string) models.Section {
	return models.Section{Key: "k", Type: "features", Background: background}
}

func TestResolveDivider_EqualBackgroundsProduceNone(t *testing.T) {
	for _, background := range constants.BackgroundOptions() {
		divider := ResolveDivider(sectionWithBackground(background), sectionWithBackground(background))
		if !divider.None() {
			t.Fatalf("expected no divider between two %q sections, got style %q", background, divider.Style)
		}
	}
}

func TestResolveDivider_EqualAfterDefaultResolution(t *testing.T) {
	// faq and contact both default to gray, so two undeclared backgrounds
	// still count as equal.
	from := models.Section{Key: "a", Type: "faq"}
	to := models.Section{Key: "b", Type: "contact"}

	divider := ResolveDivider(from, to)
	if !divider.None() {
		t.Fatalf("expected no divider between matching defaults, got style %q", divider.Style)
	}
}

func TestResolveDivider_StrongBackgroundForcesCurve(t *testing.T) {
	cases := []struct {
		from, to    string
		wantFlipped bool
	}{
		{constants.BackgroundPrimary, constants.BackgroundWhite, true},
		{constants.BackgroundDark, constants.BackgroundGray, true},
		{constants.BackgroundGradient, constants.BackgroundMetal, true},
		{constants.BackgroundWhite, constants.BackgroundPrimary, false},
		{constants.BackgroundGray, constants.BackgroundDark, false},
		{constants.BackgroundPrimary, constants.BackgroundDark, true},
	}

	for _, tc := range cases {
		divider := ResolveDivider(sectionWithBackground(tc.from), sectionWithBackground(tc.to))
		if divider.Style != constants.DividerCurve {
			t.Fatalf("%s -> %s: expected curve, got %q", tc.from, tc.to, divider.Style)
		}
		if divider.Flipped != tc.wantFlipped {
			t.Fatalf("%s -> %s: expected flipped=%v, got %v", tc.from, tc.to, tc.wantFlipped, divider.Flipped)
		}
	}
}

func TestResolveDivider_WhiteGrayPairProducesWave(t *testing.T) {
	forward := ResolveDivider(sectionWithBackground(constants.BackgroundWhite), sectionWithBackground(constants.BackgroundGray))
	if forward.Style != constants.DividerWave {
		t.Fatalf("white -> gray: expected wave, got %q", forward.Style)
	}
	if forward.Flipped {
		t.Fatalf("white -> gray: expected unflipped wave")
	}

	backward := ResolveDivider(sectionWithBackground(constants.BackgroundGray), sectionWithBackground(constants.BackgroundWhite))
	if backward.Style != constants.DividerWave {
		t.Fatalf("gray -> white: expected wave, got %q", backward.Style)
	}
}

func TestResolveDivider_FallbackGradientFade(t *testing.T) {
	divider := ResolveDivider(sectionWithBackground(constants.BackgroundGray), sectionWithBackground(constants.BackgroundMetal))
	if divider.Style != constants.DividerGradientFade {
		t.Fatalf("gray -> metal: expected gradient-fade, got %q", divider.Style)
	}
	if divider.Flipped {
		t.Fatalf("gray -> metal: neither side is strong, expected unflipped")
	}
}

func TestResolveDivider_BoundaryColors(t *testing.T) {
	divider := ResolveDivider(sectionWithBackground(constants.BackgroundDark), sectionWithBackground(constants.BackgroundWhite))
	if divider.FromColor != "#10151c" {
		t.Fatalf("expected dark boundary colour #10151c, got %q", divider.FromColor)
	}
	if divider.ToColor != "#ffffff" {
		t.Fatalf("expected white boundary colour #ffffff, got %q", divider.ToColor)
	}
}

func TestSectionBackground_DefaultsAndFallbacks(t *testing.T) {
	cases := []struct {
		section models.Section
		want    string
	}{
		{models.Section{Type: "hero"}, constants.BackgroundDark},
		{models.Section{Type: "stats"}, constants.BackgroundPrimary},
		{models.Section{Type: "faq"}, constants.BackgroundGray},
		{models.Section{Type: "features"}, constants.BackgroundWhite},
		// Unknown declared background falls through to the type default.
		{models.Section{Type: "faq", Background: "turquoise"}, constants.BackgroundGray},
		// Declared known background wins over the default.
		{models.Section{Type: "hero", Background: "Gray "}, constants.BackgroundGray},
		// Unknown type with no declaration falls back to white.
		{models.Section{Type: "mystery"}, constants.BackgroundWhite},
	}

	for _, tc := range cases {
		if got := SectionBackground(tc.section); got != tc.want {
			t.Fatalf("type=%q background=%q: expected %q, got %q", tc.section.Type, tc.section.Background, tc.want, got)
		}
	}
}
