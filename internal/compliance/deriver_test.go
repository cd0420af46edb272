package compliance

import (
	"testing"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseDocumentIDs = []string{
	catalog.DocCommercialInvoice,
	catalog.DocPackingList,
	catalog.DocBillOfLading,
	catalog.DocCertificateOfOrigin,
}

func documentIDs(checklist []model.RequiredDocument) []string {
	ids := make([]string, len(checklist))
	for i, doc := range checklist {
		ids[i] = doc.Definition.DocumentID
	}
	return ids
}

func TestChapter(t *testing.T) {
	tests := []struct {
		hsCode string
		want   int
	}{
		{"1515.30", 15},
		{"8544.30", 85},
		{"0805.10", 8},
		{"06 02 90", 6},
		{"4403-21", 44},
		{"garbage", 0},
		{"", 0},
		{"x9", 0},
		{"9", 0},
	}

	for _, tt := range tests {
		t.Run(tt.hsCode, func(t *testing.T) {
			assert.Equal(t, tt.want, Chapter(tt.hsCode))
		})
	}
}

func TestDeriveChecklist_BaseDocumentsAlwaysPresent(t *testing.T) {
	for _, hsCode := range []string{"1515.30", "8544.30", "garbage", "", "9999.99"} {
		for _, market := range []string{MarketEU, MarketUK, MarketUSA, MarketGCC, "JP", ""} {
			checklist := DeriveChecklist(hsCode, market)
			ids := documentIDs(checklist)

			require.GreaterOrEqual(t, len(ids), 4)
			assert.Equal(t, baseDocumentIDs, ids[:4], "hsCode=%q market=%q", hsCode, market)
		}
	}
}

func TestDeriveChecklist_ArganOilToEU(t *testing.T) {
	checklist := DeriveChecklist("1515.30", MarketEU)

	want := []string{
		catalog.DocCommercialInvoice,
		catalog.DocPackingList,
		catalog.DocBillOfLading,
		catalog.DocCertificateOfOrigin,
		catalog.DocEUR1Movement,
		catalog.DocSustainability,
		catalog.DocFoodSafety,
	}

	assert.Equal(t, want, documentIDs(checklist))
}

func TestDeriveChecklist_WiringHarnessToUK(t *testing.T) {
	checklist := DeriveChecklist("8544.30", MarketUK)
	ids := documentIDs(checklist)

	assert.Contains(t, ids, catalog.DocUKCADeclaration)
	assert.Contains(t, ids, catalog.DocEUR1Movement)
	assert.NotContains(t, ids, catalog.DocCEDeclaration)
	assert.NotContains(t, ids, catalog.DocFoodSafety)
}

func TestDeriveChecklist_WiringHarnessToEU(t *testing.T) {
	ids := documentIDs(DeriveChecklist("8544.30", MarketEU))

	assert.Contains(t, ids, catalog.DocCEDeclaration)
	assert.NotContains(t, ids, catalog.DocUKCADeclaration)
}

func TestDeriveChecklist_FoodChapterRules(t *testing.T) {
	tests := []struct {
		name        string
		hsCode      string
		market      string
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "food to USA gets prior notice",
			hsCode:      "1604.13",
			market:      MarketUSA,
			wantPresent: []string{catalog.DocFDAPriorNotice, catalog.DocFoodSafety},
			wantAbsent:  []string{catalog.DocHalalCertificate, catalog.DocPhytosanitary},
		},
		{
			name:        "food to GCC gets halal",
			hsCode:      "1604.13",
			market:      MarketGCC,
			wantPresent: []string{catalog.DocHalalCertificate, catalog.DocFoodSafety},
			wantAbsent:  []string{catalog.DocFDAPriorNotice},
		},
		{
			name:        "plant chapter gets phytosanitary",
			hsCode:      "0805.10",
			market:      MarketEU,
			wantPresent: []string{catalog.DocPhytosanitary, catalog.DocFoodSafety},
			wantAbsent:  []string{catalog.DocVeterinaryHealth},
		},
		{
			name:        "animal chapter gets veterinary",
			hsCode:      "0307.43",
			market:      MarketEU,
			wantPresent: []string{catalog.DocVeterinaryHealth, catalog.DocFoodSafety},
			wantAbsent:  []string{catalog.DocPhytosanitary},
		},
		{
			name:        "prepared fish chapter 16 gets veterinary",
			hsCode:      "1604.13",
			market:      MarketEU,
			wantPresent: []string{catalog.DocVeterinaryHealth},
			wantAbsent:  []string{catalog.DocPhytosanitary},
		},
		{
			name:        "non-food chapter gets none of the food documents",
			hsCode:      "2510.20",
			market:      MarketUSA,
			wantAbsent:  []string{catalog.DocFoodSafety, catalog.DocFDAPriorNotice, catalog.DocPhytosanitary, catalog.DocVeterinaryHealth},
			wantPresent: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := documentIDs(DeriveChecklist(tt.hsCode, tt.market))
			for _, id := range tt.wantPresent {
				assert.Contains(t, ids, id)
			}
			for _, id := range tt.wantAbsent {
				assert.NotContains(t, ids, id)
			}
		})
	}
}

func TestDeriveChecklist_EndangeredFloraWatchList(t *testing.T) {
	for _, hsCode := range []string{"0602.90", "1301.90", "4401.21", "4403.49"} {
		ids := documentIDs(DeriveChecklist(hsCode, "JP"))
		assert.Contains(t, ids, catalog.DocCITESExportPermit, "hsCode=%q", hsCode)
	}

	// Neighbouring headings are not on the watch-list.
	ids := documentIDs(DeriveChecklist("4402.10", "JP"))
	assert.NotContains(t, ids, catalog.DocCITESExportPermit)
}

func TestDeriveChecklist_MalformedCodeYieldsBaseline(t *testing.T) {
	checklist := DeriveChecklist("not-a-code", MarketEU)

	// Chapter 0 fires no chapter-gated rule; the EU market rules still apply.
	ids := documentIDs(checklist)
	assert.NotContains(t, ids, catalog.DocFoodSafety)
	assert.Contains(t, ids, catalog.DocEUR1Movement)

	checklist = DeriveChecklist("not-a-code", "JP")
	assert.Equal(t, baseDocumentIDs, documentIDs(checklist))
}

func TestDeriveChecklist_ReasonsAlwaysNonEmpty(t *testing.T) {
	for _, market := range []string{MarketEU, MarketUK, MarketUSA, MarketGCC, "JP"} {
		for _, hsCode := range []string{"1515.30", "8544.30", "0602.90", "bad"} {
			for _, doc := range DeriveChecklist(hsCode, market) {
				assert.NotEmpty(t, doc.Reason, "document %s for %s/%s", doc.Definition.DocumentID, hsCode, market)
			}
		}
	}
}

func TestDeriveChecklist_Deterministic(t *testing.T) {
	first := DeriveChecklist("1515.30", MarketEU)
	second := DeriveChecklist("1515.30", MarketEU)
	assert.Equal(t, first, second)
}
