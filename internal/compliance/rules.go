// Package compliance derives the document checklist a shipment needs for a
// given tariff classification and destination market, and computes the
// lifecycle status of each document from form-field completeness. All
// functions are pure; malformed input degrades to conservative defaults
// rather than erroring.
package compliance

import (
	"strconv"
	"strings"

	"github.com/atlasfreight/exportdesk/internal/catalog"
)

// Destination markets recognized by the rule table. Other values are valid
// inputs; they simply fire no market-gated rule.
const (
	MarketEU  = "EU"
	MarketUK  = "UK"
	MarketUSA = "USA"
	MarketGCC = "GCC"
)

// endangeredFloraPrefixes is the fixed 4-digit HS prefix watch-list for
// species subject to export permits.
var endangeredFloraPrefixes = map[string]bool{
	"0602": true,
	"1301": true,
	"4401": true,
	"4403": true,
}

// Chapter extracts the 2-digit tariff chapter from an HS code: the first two
// digits after removing separators. Malformed or non-numeric codes yield
// chapter 0, which matches no chapter-gated rule.
func Chapter(hsCode string) int {
	digits := stripSeparators(hsCode)
	if len(digits) < 2 {
		return 0
	}

	chapter, err := strconv.Atoi(digits[:2])
	if err != nil {
		return 0
	}
	return chapter
}

// headingPrefix extracts the 4-digit HS heading, or "" when the code is too
// short or non-numeric.
func headingPrefix(hsCode string) string {
	digits := stripSeparators(hsCode)
	if len(digits) < 4 {
		return ""
	}

	prefix := digits[:4]
	if _, err := strconv.Atoi(prefix); err != nil {
		return ""
	}
	return prefix
}

func stripSeparators(hsCode string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ' ', '-':
			return -1
		}
		return r
	}, strings.TrimSpace(hsCode))
}

// requirementRule is one conditional entry in the checklist rule table. Rules
// are independent and additive: each contributes zero or one document, in
// declaration order, so adding a rule is a data change rather than a
// control-flow change.
type requirementRule struct {
	Applies    func(chapter int, heading, market string) bool
	DocumentID string
	Reason     string
	SectorNote string
}

func isFoodChapter(chapter int) bool {
	return chapter >= 1 && chapter <= 24
}

func isElectricalChapter(chapter int) bool {
	return chapter == 84 || chapter == 85
}

// conditionalRules is evaluated in order after the base documents. Output
// order equals declaration order; identical inputs always produce identical
// checklists.
var conditionalRules = []requirementRule{
	{
		Applies: func(_ int, _, market string) bool {
			return market == MarketEU
		},
		DocumentID: catalog.DocEUR1Movement,
		Reason:     "Grants preferential tariff treatment under the EU association agreement.",
	},
	{
		Applies: func(_ int, _, market string) bool {
			return market == MarketEU
		},
		DocumentID: catalog.DocSustainability,
		Reason:     "EU buyers require a due-diligence declaration under sustainability regulations.",
		SectorNote: "Scope varies by product; agri-food and timber supply chains face the strictest checks.",
	},
	{
		Applies: func(_ int, _, market string) bool {
			return market == MarketUK
		},
		DocumentID: catalog.DocEUR1Movement,
		Reason:     "Grants preferential tariff treatment under the UK continuity trade agreement.",
	},
	{
		Applies: func(chapter int, _, market string) bool {
			return market == MarketUSA && isFoodChapter(chapter)
		},
		DocumentID: catalog.DocFDAPriorNotice,
		Reason:     "Food shipments to the USA must be notified to the FDA before arrival.",
	},
	{
		Applies: func(chapter int, _, market string) bool {
			return market == MarketGCC && isFoodChapter(chapter)
		},
		DocumentID: catalog.DocHalalCertificate,
		Reason:     "Gulf markets require halal certification for imported foodstuffs.",
	},
	{
		Applies: func(chapter int, _, _ string) bool {
			return isFoodChapter(chapter)
		},
		DocumentID: catalog.DocFoodSafety,
		Reason:     "Food-chapter goods need a food safety certificate regardless of destination.",
	},
	{
		Applies: func(chapter int, _, _ string) bool {
			return chapter >= 6 && chapter <= 14
		},
		DocumentID: catalog.DocPhytosanitary,
		Reason:     "Plant and plant-product chapters require phytosanitary inspection.",
		SectorNote: "Inspection happens at origin; book it before the goods are containerized.",
	},
	{
		Applies: func(chapter int, _, _ string) bool {
			return (chapter >= 1 && chapter <= 5) || chapter == 16
		},
		DocumentID: catalog.DocVeterinaryHealth,
		Reason:     "Animal-origin goods require a veterinary health certificate.",
	},
	{
		Applies: func(chapter int, _, market string) bool {
			return isElectricalChapter(chapter) && market == MarketEU
		},
		DocumentID: catalog.DocCEDeclaration,
		Reason:     "Machinery and electrical goods placed on the EU market need CE conformity.",
	},
	{
		Applies: func(chapter int, _, market string) bool {
			return isElectricalChapter(chapter) && market == MarketUK
		},
		DocumentID: catalog.DocUKCADeclaration,
		Reason:     "Machinery and electrical goods placed on the GB market need UKCA conformity.",
	},
	{
		Applies: func(_ int, heading, _ string) bool {
			return endangeredFloraPrefixes[heading]
		},
		DocumentID: catalog.DocCITESExportPermit,
		Reason:     "This HS heading is on the endangered-flora watch-list and needs an export permit.",
		SectorNote: "Permit lead times run to several weeks; apply before confirming delivery dates.",
	},
}
