package model

import "fmt"

// ClassificationQuery is the transient input to the tariff classifier.
// Category and Subcategory are optional hints; FreeTextDescription is the
// user-entered product description.
type ClassificationQuery struct {
	Category            string
	Subcategory         string
	FreeTextDescription string
}

// ClassificationMatch pairs a tariff entry with a confidence score.
// Confidence is an integer in [0, 99]; 100 is reserved for a certainty the
// scorer cannot structurally produce.
type ClassificationMatch struct {
	Entry      TariffEntry
	Confidence int
}

// Validate ensures the match has valid data.
func (m *ClassificationMatch) Validate() error {
	if m.Entry.HSCode == "" {
		return fmt.Errorf("match must reference a tariff entry")
	}

	if m.Confidence < 0 || m.Confidence > 99 {
		return fmt.Errorf("confidence must be between 0 and 99, got %d", m.Confidence)
	}

	return nil
}

// ClassificationMatches is a slice of ClassificationMatch with utility methods.
// Matches are ordered by descending confidence, ties broken by catalog order.
type ClassificationMatches []ClassificationMatch

// Top returns the highest-confidence match, or nil if empty.
func (m ClassificationMatches) Top() *ClassificationMatch {
	if len(m) == 0 {
		return nil
	}
	return &m[0]
}

// HSCodes returns the HS codes of all matches, in ranked order.
func (m ClassificationMatches) HSCodes() []string {
	codes := make([]string, len(m))
	for i, match := range m {
		codes[i] = match.Entry.HSCode
	}
	return codes
}

// Validate ensures all matches are valid and ordered by descending confidence.
func (m ClassificationMatches) Validate() error {
	for i := range m {
		if err := m[i].Validate(); err != nil {
			return fmt.Errorf("invalid match at index %d: %w", i, err)
		}

		if i > 0 && m[i].Confidence > m[i-1].Confidence {
			return fmt.Errorf("matches out of order at index %d", i)
		}
	}

	return nil
}
