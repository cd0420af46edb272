package catalog

import "github.com/atlasfreight/exportdesk/internal/model"

// Document IDs referenced by the compliance rule table.
const (
	DocCommercialInvoice   = "commercial_invoice"
	DocPackingList         = "packing_list"
	DocBillOfLading        = "bill_of_lading"
	DocCertificateOfOrigin = "certificate_of_origin"
	DocEUR1Movement        = "eur1_movement_certificate"
	DocSustainability      = "sustainability_declaration"
	DocFDAPriorNotice      = "fda_prior_notice"
	DocHalalCertificate    = "halal_certificate"
	DocFoodSafety          = "food_safety_certificate"
	DocPhytosanitary       = "phytosanitary_certificate"
	DocVeterinaryHealth    = "veterinary_certificate"
	DocCEDeclaration       = "ce_declaration"
	DocUKCADeclaration     = "ukca_declaration"
	DocCITESExportPermit   = "cites_export_permit"
)

var documentCatalog = []model.DocumentDefinition{
	{
		DocumentID:              DocCommercialInvoice,
		Label:                   "Commercial Invoice",
		Abbreviation:            "CI",
		IssuingAuthority:        "Exporter",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 1,
	},
	{
		DocumentID:              DocPackingList,
		Label:                   "Packing List",
		Abbreviation:            "PL",
		IssuingAuthority:        "Exporter",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 1,
	},
	{
		DocumentID:              DocBillOfLading,
		Label:                   "Bill of Lading",
		Abbreviation:            "B/L",
		IssuingAuthority:        "Carrier / freight forwarder",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 2,
	},
	{
		DocumentID:              DocCertificateOfOrigin,
		Label:                   "Certificate of Origin",
		Abbreviation:            "CO",
		IssuingAuthority:        "Chamber of Commerce",
		Urgency:                 model.UrgencyHigh,
		EstimatedProcessingDays: 3,
	},
	{
		DocumentID:              DocEUR1Movement,
		Label:                   "EUR.1 Movement Certificate",
		Abbreviation:            "EUR.1",
		IssuingAuthority:        "Customs administration",
		Urgency:                 model.UrgencyHigh,
		EstimatedProcessingDays: 5,
	},
	{
		DocumentID:              DocSustainability,
		Label:                   "Sustainability Due-Diligence Declaration",
		Abbreviation:            "SDD",
		IssuingAuthority:        "Exporter (self-declared)",
		Urgency:                 model.UrgencyMedium,
		EstimatedProcessingDays: 2,
	},
	{
		DocumentID:              DocFDAPriorNotice,
		Label:                   "FDA Prior Notice",
		Abbreviation:            "PN",
		IssuingAuthority:        "US Food & Drug Administration",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 3,
	},
	{
		DocumentID:              DocHalalCertificate,
		Label:                   "Halal Certificate",
		Abbreviation:            "HC",
		IssuingAuthority:        "Accredited halal certification body",
		Urgency:                 model.UrgencyHigh,
		EstimatedProcessingDays: 10,
	},
	{
		DocumentID:              DocFoodSafety,
		Label:                   "Food Safety Certificate",
		Abbreviation:            "FSC",
		IssuingAuthority:        "National food safety agency",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 7,
	},
	{
		DocumentID:              DocPhytosanitary,
		Label:                   "Phytosanitary Certificate",
		Abbreviation:            "PC",
		IssuingAuthority:        "Plant protection service",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 4,
	},
	{
		DocumentID:              DocVeterinaryHealth,
		Label:                   "Veterinary Health Certificate",
		Abbreviation:            "VHC",
		IssuingAuthority:        "Veterinary services",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 5,
	},
	{
		DocumentID:              DocCEDeclaration,
		Label:                   "CE Declaration of Conformity",
		Abbreviation:            "CE DoC",
		IssuingAuthority:        "Manufacturer / notified body",
		Urgency:                 model.UrgencyHigh,
		EstimatedProcessingDays: 14,
	},
	{
		DocumentID:              DocUKCADeclaration,
		Label:                   "UKCA Declaration of Conformity",
		Abbreviation:            "UKCA DoC",
		IssuingAuthority:        "Manufacturer / UK approved body",
		Urgency:                 model.UrgencyHigh,
		EstimatedProcessingDays: 14,
	},
	{
		DocumentID:              DocCITESExportPermit,
		Label:                   "CITES Export Permit",
		Abbreviation:            "CITES",
		IssuingAuthority:        "CITES management authority",
		Urgency:                 model.UrgencyCritical,
		EstimatedProcessingDays: 21,
	},
}

// Documents returns the full document catalog in canonical order. Callers
// must treat the returned slice as read-only.
func Documents() []model.DocumentDefinition {
	return documentCatalog
}

// DocumentByID looks up a document definition by its ID. Returns nil when the
// ID is not in the catalog.
func DocumentByID(documentID string) *model.DocumentDefinition {
	for i := range documentCatalog {
		if documentCatalog[i].DocumentID == documentID {
			return &documentCatalog[i]
		}
	}
	return nil
}
