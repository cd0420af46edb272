package compliance

import (
	"testing"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatus_PackingList(t *testing.T) {
	// The packing list requires exporter name, consignee name and quantity.
	require.Len(t, RequiredFields(catalog.DocPackingList), 3)

	tests := []struct {
		name string
		ctx  model.FieldCompletionContext
		want model.DocumentStatus
	}{
		{
			name: "nothing filled",
			ctx:  model.FieldCompletionContext{},
			want: model.StatusMissing,
		},
		{
			name: "one field filled",
			ctx: model.FieldCompletionContext{
				Exporter: model.Party{Name: "Atlas Coop"},
			},
			want: model.StatusDraft,
		},
		{
			name: "two fields filled",
			ctx: model.FieldCompletionContext{
				Exporter:  model.Party{Name: "Atlas Coop"},
				Consignee: model.Party{Name: "Nordsee GmbH"},
			},
			want: model.StatusDraft,
		},
		{
			name: "all fields filled",
			ctx: model.FieldCompletionContext{
				Exporter:  model.Party{Name: "Atlas Coop"},
				Consignee: model.Party{Name: "Nordsee GmbH"},
				Quantity:  120,
			},
			want: model.StatusReady,
		},
		{
			name: "irrelevant fields do not count",
			ctx: model.FieldCompletionContext{
				Exporter:  model.Party{Address: "12 Rue des Orangers", City: "Agadir"},
				UnitPrice: 4.2,
			},
			want: model.StatusMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStatus(catalog.DocPackingList, tt.ctx, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStatus_FiledIsSticky(t *testing.T) {
	full := model.FieldCompletionContext{
		Exporter:  model.Party{Name: "Atlas Coop"},
		Consignee: model.Party{Name: "Nordsee GmbH"},
		Quantity:  120,
	}

	assert.Equal(t, model.StatusReady, ComputeStatus(catalog.DocPackingList, full, false))
	assert.Equal(t, model.StatusFiled, ComputeStatus(catalog.DocPackingList, full, true))

	// Clearing a field never demotes a filed document.
	cleared := full
	cleared.Quantity = 0
	assert.Equal(t, model.StatusFiled, ComputeStatus(catalog.DocPackingList, cleared, true))
	assert.Equal(t, model.StatusDraft, ComputeStatus(catalog.DocPackingList, cleared, false))
}

func TestComputeStatus_UnknownDocumentUsesDefaultFields(t *testing.T) {
	assert.Equal(t, defaultRequiredFields, RequiredFields("no_such_document"))

	ctx := model.FieldCompletionContext{
		Exporter: model.Party{Name: "Atlas Coop"},
	}

	// One of the two default fields is filled.
	assert.Equal(t, model.StatusDraft, ComputeStatus("no_such_document", ctx, false))

	ctx.Consignee.Name = "Nordsee GmbH"
	assert.Equal(t, model.StatusReady, ComputeStatus("no_such_document", ctx, false))

	assert.Equal(t, model.StatusMissing, ComputeStatus("no_such_document", model.FieldCompletionContext{}, false))
}

func TestComputeStatus_BackwardMovement(t *testing.T) {
	ctx := model.FieldCompletionContext{
		Exporter:  model.Party{Name: "Atlas Coop"},
		Consignee: model.Party{Name: "Nordsee GmbH"},
		Quantity:  120,
	}
	assert.Equal(t, model.StatusReady, ComputeStatus(catalog.DocPackingList, ctx, false))

	// Editing a field moves the document back to Draft.
	ctx.Consignee.Name = ""
	assert.Equal(t, model.StatusDraft, ComputeStatus(catalog.DocPackingList, ctx, false))
}

func TestRequiredFields_KnownDocuments(t *testing.T) {
	for _, doc := range []string{
		catalog.DocCommercialInvoice,
		catalog.DocPackingList,
		catalog.DocBillOfLading,
		catalog.DocCertificateOfOrigin,
		catalog.DocEUR1Movement,
	} {
		fields := RequiredFields(doc)
		assert.NotEmpty(t, fields, "document %s", doc)

		for _, path := range fields {
			filled := fieldFilled(model.FieldCompletionContext{
				Exporter:  model.Party{Name: "a", Address: "b", City: "c", Country: "d"},
				Consignee: model.Party{Name: "e", Address: "f", City: "g", Country: "h"},
				Quantity:  1,
				UnitPrice: 1,
			}, path)
			assert.True(t, filled, "field path %s did not resolve", path)
		}
	}
}
