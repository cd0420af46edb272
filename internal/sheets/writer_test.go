package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasfreight/exportdesk/internal/compliance"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareChecklistData(t *testing.T) {
	shipment := &model.Shipment{
		Description: "argan oil, cold pressed",
		HSCode:      "1515.30",
		Market:      "EU",
	}
	checklist := compliance.DeriveChecklist(shipment.HSCode, shipment.Market)
	statuses := map[string]model.DocumentStatus{}
	for _, doc := range checklist {
		statuses[doc.Definition.DocumentID] = model.StatusDraft
	}

	w := &Writer{}
	values := w.prepareChecklistData(shipment, checklist, statuses)

	// Title, shipment header, blank spacer and column header precede the rows.
	require.Len(t, values, len(checklist)+4)
	assert.Equal(t, []any{"Export Compliance Checklist"}, values[0])
	assert.Contains(t, values[1], "1515.30")

	firstRow := values[4]
	assert.Equal(t, checklist[0].Definition.Label, firstRow[0])
	assert.Equal(t, "DRAFT", firstRow[5])
	assert.Equal(t, checklist[0].Reason, firstRow[6])
}

func TestMockWriter(t *testing.T) {
	mock := NewMockWriter()
	ctx := context.Background()

	shipment := &model.Shipment{ID: 1, Description: "test"}
	checklist := compliance.DeriveChecklist("1515.30", "EU")

	require.NoError(t, mock.Write(ctx, shipment, checklist, nil))
	assert.Equal(t, 1, mock.WriteCallCount)
	assert.Equal(t, shipment, mock.LastShipment)
	assert.Len(t, mock.LastChecklist, len(checklist))

	mock.SetWriteError(errors.New("quota exceeded"))
	assert.Error(t, mock.Write(ctx, shipment, checklist, nil))

	mock.Reset()
	assert.Zero(t, mock.WriteCallCount)
	assert.Nil(t, mock.LastShipment)
}
