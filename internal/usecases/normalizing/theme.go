package normalizing

import "strings"

// themeRule maps a theme label to the keywords that signal it. Rules are
// evaluated in order and the first match wins, so the slice order IS the
// precedence: authority and testimonial angles outrank promo wording, which
// keeps a discounted doctor ad classified as authority-led.
type themeRule struct {
	theme    string
	keywords []string
}

var themeRules = []themeRule{
	{
		theme: "doctor_authority",
		keywords: []string{
			"doctor", "dermatologist", "pediatrician", "gynecologist",
			"expert", "clinic", "prescription", "trichologist",
		},
	},
	{
		theme: "ugc_testimonial",
		keywords: []string{
			"real customer", "review", "testimonial", "i tried",
			"my experience", "honest", "customer story",
		},
	},
	{
		theme: "offer_promo",
		keywords: []string{
			"% off", "discount", "sale", "free shipping", "use code",
			"offer", "deal", "flat ", "price drop", "bogo",
		},
	},
	{
		theme: "ingredient_science",
		keywords: []string{
			"clinically proven", "study", "science", "ingredient",
			"formula", "biotin", "minoxidil", "niacinamide", "actives",
		},
	},
	{
		theme: "before_after",
		keywords: []string{
			"before and after", "before & after", "transformation",
			"results in", "visible results", "30-day", "90 days",
		},
	},
	{
		theme: "parent_reassurance",
		keywords: []string{
			"your child", "for kids", "parents trust", "safe for",
			"no refined sugar", "no preservatives", "picky eater",
		},
	},
	{
		theme: "community_story",
		keywords: []string{
			"community", "join thousands", "lakh+ members", "movement",
			"people like you", "together",
		},
	},
}

// ClassifyTheme assigns a theme label from the ad's title and body, or nil
// when no rule matches. The match is a case-insensitive substring check, so
// classification is deterministic and cheap.
func ClassifyTheme(title, body string) *string {
	text := strings.ToLower(title + " " + body)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, rule := range themeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				theme := rule.theme
				return &theme
			}
		}
	}

	return nil
}

// ThemeLabels returns every known theme in precedence order, for the
// /api/themes endpoint and the stats layer.
func ThemeLabels() []string {
	labels := make([]string, 0, len(themeRules))
	for _, rule := range themeRules {
		labels = append(labels, rule.theme)
	}
	return labels
}
