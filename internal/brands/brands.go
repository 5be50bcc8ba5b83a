// Package brands holds the compiled-in competitor registry. The registry is
// configuration, not data: it never changes at runtime and is never persisted.
package brands

import "github.com/mosaicwellness/ad-warroom-api/internal/domain"

var registry = []domain.Brand{
	{
		Key:            "manmatters",
		DisplayName:    "Man Matters",
		Category:       "Men's wellness",
		TargetAudience: "Men 22-40 dealing with hair loss, beard growth, performance and nutrition",
		Competitors: []domain.Competitor{
			{
				Name:           "Traya",
				Category:       "Hair loss treatment",
				Justification:  "Direct rival on doctor-backed hair regrowth plans for men",
				PageSearchTerm: "Traya Health",
			},
			{
				Name:           "Bold Care",
				Category:       "Sexual wellness",
				Justification:  "Competes head-on in men's performance and intimacy products",
				PageSearchTerm: "Bold Care",
			},
			{
				Name:           "The Man Company",
				Category:       "Men's grooming",
				Justification:  "Owns the premium grooming shelf the brand upsells into",
				PageSearchTerm: "The Man Company",
			},
			{
				Name:           "Beardo",
				Category:       "Men's grooming",
				Justification:  "High-volume beard and hair spender with aggressive promos",
				PageSearchTerm: "Beardo",
			},
			{
				Name:           "Ustraa",
				Category:       "Men's grooming",
				Justification:  "Mass-market grooming alternative fighting for the same carts",
				PageSearchTerm: "Ustraa",
			},
		},
	},
	{
		Key:            "bebodywise",
		DisplayName:    "Be Bodywise",
		Category:       "Women's wellness",
		TargetAudience: "Women 20-45 focused on hair, skin, PCOS and body care",
		Competitors: []domain.Competitor{
			{
				Name:           "Plum",
				Category:       "Skincare",
				Justification:  "Clean-beauty leader targeting the same skin concerns",
				PageSearchTerm: "Plum Goodness",
			},
			{
				Name:           "Pilgrim",
				Category:       "Hair & skincare",
				Justification:  "Fast-growing ingredient-first rival in hair fall and glow",
				PageSearchTerm: "Pilgrim",
			},
			{
				Name:           "Minimalist",
				Category:       "Skincare",
				Justification:  "Science-led actives brand shaping category expectations",
				PageSearchTerm: "Be Minimalist",
			},
			{
				Name:           "Gynoveda",
				Category:       "Women's health",
				Justification:  "Competes directly on PCOS and period-care solutions",
				PageSearchTerm: "Gynoveda",
			},
			{
				Name:           "Mamaearth",
				Category:       "Personal care",
				Justification:  "Largest overlapping audience across toxin-free body care",
				PageSearchTerm: "Mamaearth",
			},
		},
	},
	{
		Key:            "littlejoys",
		DisplayName:    "Little Joys",
		Category:       "Kids' nutrition",
		TargetAudience: "Parents of children 2-12 worried about growth, immunity and picky eating",
		Competitors: []domain.Competitor{
			{
				Name:           "Slurrp Farm",
				Category:       "Kids' food",
				Justification:  "Millet-based kids' nutrition brand with strong parent trust",
				PageSearchTerm: "Slurrp Farm",
			},
			{
				Name:           "Timios",
				Category:       "Kids' snacks",
				Justification:  "Competes on healthy snacking occasions for the same kids",
				PageSearchTerm: "Timios",
			},
			{
				Name:           "Little's",
				Category:       "Baby care",
				Justification:  "Legacy baby brand expanding into toddler nutrition",
				PageSearchTerm: "Littles Baby",
			},
			{
				Name:           "Happa",
				Category:       "Organic baby food",
				Justification:  "Organic positioning pulls the most label-conscious parents",
				PageSearchTerm: "Happa Foods",
			},
		},
	},
}

var byKey = func() map[string]*domain.Brand {
	m := make(map[string]*domain.Brand, len(registry))
	for i := range registry {
		m[registry[i].Key] = &registry[i]
	}
	return m
}()

// All returns every brand in registry order.
func All() []domain.Brand {
	return registry
}

// Get returns the brand for key, or nil when the key is unknown.
func Get(key string) *domain.Brand {
	return byKey[key]
}

func Exists(key string) bool {
	return byKey[key] != nil
}

// Keys returns brand keys in registry order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for _, b := range registry {
		keys = append(keys, b.Key)
	}
	return keys
}
