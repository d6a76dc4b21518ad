package quiz

// the six scent archetypes, in tie-break order: when answer sets score
// two archetypes equally, the one defined first wins
var archetypes = []Archetype{
	{
		ID:      "fresh_minimalist",
		Name:    "The Fresh Minimalist",
		Tagline: "Clean, effortless, always appropriate",
		accords: []string{"fresh", "citrus", "aquatic", "green"},
	},
	{
		ID:      "romantic_classic",
		Name:    "The Romantic",
		Tagline: "Soft petals and quiet elegance",
		accords: []string{"floral", "powdery", "musky"},
	},
	{
		ID:      "sweet_gourmand",
		Name:    "The Sweet Tooth",
		Tagline: "Dessert you can wear",
		accords: []string{"sweet", "vanilla", "gourmand", "fruity"},
	},
	{
		ID:      "woodland_wanderer",
		Name:    "The Woodland Wanderer",
		Tagline: "Forest air and worn leather boots",
		accords: []string{"woody", "earthy", "green", "aromatic"},
	},
	{
		ID:      "amber_enigma",
		Name:    "The Amber Enigma",
		Tagline: "Warm, deep, impossible to ignore",
		accords: []string{"amber", "spicy", "vanilla"},
	},
	{
		ID:      "bold_icon",
		Name:    "The Bold Icon",
		Tagline: "Leaves a trail and no doubt",
		accords: []string{"leather", "tobacco", "musky", "spicy"},
	},
}

// Archetypes returns every archetype in definition order
func Archetypes() []Archetype {
	return archetypes
}

// ArchetypeByID looks up an archetype by its identifier
func ArchetypeByID(id string) (Archetype, bool) {
	for _, a := range archetypes {
		if a.ID == id {
			return a, true
		}
	}

	return Archetype{}, false
}

// classify picks the archetype whose accords best match the weight map
func classify(weights map[string]float32) Archetype {
	best := archetypes[0]
	bestScore := float32(-1)

	for _, archetype := range archetypes {
		var score float32
		for _, accord := range archetype.accords {
			score += weights[accord]
		}

		// strict comparison keeps definition order on ties
		if score > bestScore {
			best = archetype
			bestScore = score
		}
	}

	return best
}
