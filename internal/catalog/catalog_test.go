package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTariffs_AllEntriesValid(t *testing.T) {
	entries := Tariffs()
	require.NotEmpty(t, entries)

	seen := make(map[string]bool)
	for _, entry := range entries {
		assert.NoError(t, entry.Validate(), "entry %s", entry.HSCode)
		assert.False(t, seen[entry.HSCode], "duplicate HS code %s", entry.HSCode)
		seen[entry.HSCode] = true
	}
}

func TestTariffByHSCode(t *testing.T) {
	entry := TariffByHSCode("1515.30")
	require.NotNil(t, entry)
	assert.Equal(t, "Argan oil", entry.ShortDescription)

	assert.Nil(t, TariffByHSCode("9999.99"))
}

func TestDocuments_AllDefinitionsValid(t *testing.T) {
	docs := Documents()
	require.NotEmpty(t, docs)

	seen := make(map[string]bool)
	for _, doc := range docs {
		assert.NoError(t, doc.Validate(), "document %s", doc.DocumentID)
		assert.False(t, seen[doc.DocumentID], "duplicate document ID %s", doc.DocumentID)
		seen[doc.DocumentID] = true
	}
}

func TestDocumentByID(t *testing.T) {
	doc := DocumentByID(DocEUR1Movement)
	require.NotNil(t, doc)
	assert.Equal(t, "EUR.1 Movement Certificate", doc.Label)
	assert.Equal(t, "EUR.1", doc.Abbreviation)

	assert.Nil(t, DocumentByID("carnet_ata"))
}
