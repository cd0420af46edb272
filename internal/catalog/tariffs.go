// Package catalog holds the static tariff and compliance-document reference
// data. Both catalogs are append-only: they are defined at build time, loaded
// once per process, and never mutated, so concurrent readers need no locking.
package catalog

import "github.com/atlasfreight/exportdesk/internal/model"

var tariffCatalog = []model.TariffEntry{
	{
		HSCode:            "1509.10",
		ShortDescription:  "Extra virgin olive oil",
		LongDescription:   "Virgin olive oil obtained solely by mechanical means, fit for consumption as-is.",
		Keywords:          []string{"olive", "oil", "virgin", "cold-pressed"},
		Category:          "Food & Agriculture",
		Subcategory:       "Edible Oils",
		DutyRatePercent:   4.5,
		TaxRatePercent:    10,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Casablanca", "Agadir"},
	},
	{
		HSCode:            "1515.30",
		ShortDescription:  "Argan oil",
		LongDescription:   "Fixed vegetable oil pressed from argan kernels, for culinary or cosmetic use.",
		Keywords:          []string{"argan", "oil", "cosmetic", "culinary"},
		Category:          "Food & Agriculture",
		Subcategory:       "Edible Oils",
		DutyRatePercent:   3.2,
		TaxRatePercent:    10,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Agadir", "Casablanca"},
	},
	{
		HSCode:            "0805.10",
		ShortDescription:  "Fresh oranges",
		LongDescription:   "Fresh or dried oranges, including navel and Valencia varieties.",
		Keywords:          []string{"orange", "citrus", "fresh", "fruit"},
		Category:          "Food & Agriculture",
		Subcategory:       "Citrus",
		DutyRatePercent:   12,
		TaxRatePercent:    7,
		RiskTag:           model.RiskMedium,
		LikelyOriginPorts: []string{"Agadir", "Casablanca"},
	},
	{
		HSCode:            "0702.00",
		ShortDescription:  "Fresh tomatoes",
		LongDescription:   "Fresh or chilled tomatoes, including cherry and cocktail varieties.",
		Keywords:          []string{"tomato", "cherry", "fresh", "vegetable"},
		Category:          "Food & Agriculture",
		Subcategory:       "Fresh Vegetables",
		DutyRatePercent:   14,
		TaxRatePercent:    7,
		RiskTag:           model.RiskMedium,
		LikelyOriginPorts: []string{"Agadir", "Tanger Med"},
	},
	{
		HSCode:            "1604.13",
		ShortDescription:  "Canned sardines",
		LongDescription:   "Prepared or preserved sardines, sardinella and brisling, whole or in pieces.",
		Keywords:          []string{"sardine", "canned", "fish", "preserved"},
		Category:          "Food & Agriculture",
		Subcategory:       "Seafood",
		DutyRatePercent:   8,
		TaxRatePercent:    10,
		RiskTag:           model.RiskMedium,
		LikelyOriginPorts: []string{"Safi", "Agadir"},
	},
	{
		HSCode:            "0307.43",
		ShortDescription:  "Frozen octopus",
		LongDescription:   "Frozen octopus, whole or cleaned, of the genus Octopus.",
		Keywords:          []string{"octopus", "cephalopod", "frozen", "seafood"},
		Category:          "Food & Agriculture",
		Subcategory:       "Seafood",
		DutyRatePercent:   6,
		TaxRatePercent:    10,
		RiskTag:           model.RiskHigh,
		LikelyOriginPorts: []string{"Dakhla", "Agadir"},
	},
	{
		HSCode:            "0603.11",
		ShortDescription:  "Fresh cut roses",
		LongDescription:   "Fresh cut roses and buds, suitable for bouquets or ornamental purposes.",
		Keywords:          []string{"rose", "flower", "cut", "bouquet"},
		Category:          "Horticulture",
		Subcategory:       "Cut Flowers",
		DutyRatePercent:   10,
		TaxRatePercent:    7,
		RiskTag:           model.RiskHigh,
		LikelyOriginPorts: []string{"Agadir", "Casablanca"},
	},
	{
		HSCode:            "1301.90",
		ShortDescription:  "Natural gums and resins",
		LongDescription:   "Natural gums, resins, gum-resins and oleoresins other than gum arabic.",
		Keywords:          []string{"gum", "resin", "sandarac", "natural"},
		Category:          "Food & Agriculture",
		Subcategory:       "Plant Extracts",
		DutyRatePercent:   2.5,
		TaxRatePercent:    10,
		RiskTag:           model.RiskHigh,
		LikelyOriginPorts: []string{"Casablanca"},
	},
	{
		HSCode:            "2510.20",
		ShortDescription:  "Ground phosphates",
		LongDescription:   "Natural calcium phosphates, ground, for fertilizer manufacture.",
		Keywords:          []string{"phosphate", "rock", "fertilizer", "mineral"},
		Category:          "Minerals & Mining",
		Subcategory:       "Phosphates",
		DutyRatePercent:   0,
		TaxRatePercent:    5,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Casablanca", "Safi"},
	},
	{
		HSCode:            "3105.20",
		ShortDescription:  "NPK mineral fertilizers",
		LongDescription:   "Mineral or chemical fertilizers containing nitrogen, phosphorus and potassium.",
		Keywords:          []string{"fertilizer", "npk", "nitrogen", "potassium"},
		Category:          "Minerals & Mining",
		Subcategory:       "Fertilizers",
		DutyRatePercent:   2,
		TaxRatePercent:    5,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Casablanca", "Safi"},
	},
	{
		HSCode:            "8544.30",
		ShortDescription:  "Automotive wiring harnesses",
		LongDescription:   "Ignition wiring sets and other wiring sets of a kind used in vehicles.",
		Keywords:          []string{"wiring", "harness", "ignition", "automotive", "cable"},
		Category:          "Industrial",
		Subcategory:       "Automotive Components",
		DutyRatePercent:   2.5,
		TaxRatePercent:    20,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Tanger Med"},
	},
	{
		HSCode:            "8708.29",
		ShortDescription:  "Vehicle body parts",
		LongDescription:   "Parts and accessories of motor vehicle bodies, including panels and trim.",
		Keywords:          []string{"body", "panel", "trim", "automotive"},
		Category:          "Industrial",
		Subcategory:       "Automotive Components",
		DutyRatePercent:   3,
		TaxRatePercent:    20,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Tanger Med", "Casablanca"},
	},
	{
		HSCode:            "6109.10",
		ShortDescription:  "Cotton t-shirts",
		LongDescription:   "T-shirts, singlets and other vests of cotton, knitted or crocheted.",
		Keywords:          []string{"t-shirt", "cotton", "knit", "apparel"},
		Category:          "Textiles & Apparel",
		Subcategory:       "Knitwear",
		DutyRatePercent:   12,
		TaxRatePercent:    20,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Tanger Med", "Casablanca"},
	},
	{
		HSCode:            "4202.21",
		ShortDescription:  "Leather handbags",
		LongDescription:   "Handbags with outer surface of leather, with or without shoulder strap.",
		Keywords:          []string{"leather", "handbag", "bag", "artisan"},
		Category:          "Leather Goods",
		Subcategory:       "Bags",
		DutyRatePercent:   9,
		TaxRatePercent:    20,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Casablanca", "Tanger Med"},
	},
	{
		HSCode:            "6912.00",
		ShortDescription:  "Ceramic tableware",
		LongDescription:   "Ceramic tableware, kitchenware and other household articles, other than porcelain.",
		Keywords:          []string{"ceramic", "pottery", "tagine", "tableware"},
		Category:          "Handicrafts",
		Subcategory:       "Ceramics",
		DutyRatePercent:   7,
		TaxRatePercent:    20,
		RiskTag:           model.RiskLow,
		LikelyOriginPorts: []string{"Casablanca", "Safi"},
	},
}

// Tariffs returns the full tariff catalog in canonical order. Callers must
// treat the returned slice as read-only.
func Tariffs() []model.TariffEntry {
	return tariffCatalog
}

// TariffByHSCode looks up a tariff entry by its HS code. Returns nil when the
// code is not in the catalog.
func TariffByHSCode(hsCode string) *model.TariffEntry {
	for i := range tariffCatalog {
		if tariffCatalog[i].HSCode == hsCode {
			return &tariffCatalog[i]
		}
	}
	return nil
}
