// Package catalog holds the platform-curated bookable products. These are
// not tied to a provider record; priced products carry a headcount tier
// table, the rest require an admin- or caller-supplied total.
package catalog

type PriceTier struct {
	MinHeadcount int     `json:"min_headcount"`
	MaxHeadcount int     `json:"max_headcount"`
	UnitPrice    float64 `json:"unit_price"`
}

type Product struct {
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Tiers       []PriceTier `json:"tiers,omitempty"`
}

// HasTiers reports whether the product has a published price table. Products
// without one cannot be priced server-side.
func (p Product) HasTiers() bool { return len(p.Tiers) > 0 }

// TierFor returns the tier whose [min,max] range contains headcount.
func (p Product) TierFor(headcount int) (PriceTier, bool) {
	for _, t := range p.Tiers {
		if headcount >= t.MinHeadcount && headcount <= t.MaxHeadcount {
			return t, true
		}
	}
	return PriceTier{}, false
}

var products = []Product{
	{
		Type:        "jeep-safari",
		Name:        "Jeep Safari",
		Category:    "safari",
		Description: "Half-day jeep safari in Yala or Udawalawe national park with a tracker.",
		Tiers: []PriceTier{
			{MinHeadcount: 1, MaxHeadcount: 3, UnitPrice: 55},
			{MinHeadcount: 4, MaxHeadcount: 6, UnitPrice: 45},
			{MinHeadcount: 7, MaxHeadcount: 12, UnitPrice: 38},
		},
	},
	{
		Type:        "village-tour",
		Name:        "Traditional Village Tour",
		Category:    "village-tour",
		Description: "Bullock cart ride, catamaran lake crossing and a home-cooked village lunch.",
		Tiers: []PriceTier{
			{MinHeadcount: 1, MaxHeadcount: 4, UnitPrice: 30},
			{MinHeadcount: 5, MaxHeadcount: 10, UnitPrice: 24},
		},
	},
	{
		Type:        "madu-river-boat-ride",
		Name:        "Madu River Boat Ride",
		Category:    "boat-ride",
		Description: "Mangrove lagoon boat ride with cinnamon island and fish therapy stops.",
		Tiers: []PriceTier{
			{MinHeadcount: 1, MaxHeadcount: 2, UnitPrice: 40},
			{MinHeadcount: 3, MaxHeadcount: 8, UnitPrice: 28},
		},
	},
	{
		Type:        "ayurveda-spa-day",
		Name:        "Ayurveda Spa Day",
		Category:    "ayurveda",
		Description: "Full-day ayurvedic treatment package; priced per enquiry.",
	},
	{
		Type:        "private-cultural-triangle",
		Name:        "Private Cultural Triangle Tour",
		Category:    "cultural",
		Description: "Custom multi-day Sigiriya, Dambulla and Polonnaruwa itinerary; priced per enquiry.",
	},
}

func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

func Find(productType string) (Product, bool) {
	for _, p := range products {
		if p.Type == productType {
			return p, true
		}
	}
	return Product{}, false
}
