package sections

// DefaultRegistry returns a registry pre-populated with the built-in section
// renderers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in section renderers to the provided registry.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	// Marketing blocks
	RegisterHero(reg)
	RegisterFeatures(reg)
	RegisterCTA(reg)
	RegisterLogos(reg)
	RegisterPricing(reg)
	RegisterStats(reg)

	// Media blocks
	RegisterCarousel(reg)
	RegisterGallery(reg)

	// Content and support blocks
	RegisterTimeline(reg)
	RegisterFAQ(reg)
	RegisterContact(reg)
	RegisterMap(reg)
}
