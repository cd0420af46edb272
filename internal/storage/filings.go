package storage

import (
	"context"
	"fmt"
)

// MarkFiled records the sticky "mark as filed" action for one document of a
// shipment. Marking an already-filed document is a no-op, not an error.
func (s *SQLiteStorage) MarkFiled(ctx context.Context, shipmentID int64, documentID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateShipmentID(shipmentID); err != nil {
		return err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO document_filings (shipment_id, document_id)
		VALUES (?, ?)
		ON CONFLICT (shipment_id, document_id) DO NOTHING`,
		shipmentID, documentID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark document filed: %w", err)
	}

	return nil
}

// IsFiled reports whether a document of a shipment was explicitly filed.
func (s *SQLiteStorage) IsFiled(ctx context.Context, shipmentID int64, documentID string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateShipmentID(shipmentID); err != nil {
		return false, err
	}
	if err := validateString(documentID, "documentID"); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM document_filings
		WHERE shipment_id = ? AND document_id = ?`,
		shipmentID, documentID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query filed flag: %w", err)
	}

	return count > 0, nil
}

// FiledDocuments returns the document IDs of a shipment that were explicitly
// filed.
func (s *SQLiteStorage) FiledDocuments(ctx context.Context, shipmentID int64) (map[string]bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateShipmentID(shipmentID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id FROM document_filings WHERE shipment_id = ?`,
		shipmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query filed documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	filed := make(map[string]bool)
	for rows.Next() {
		var documentID string
		if err := rows.Scan(&documentID); err != nil {
			return nil, fmt.Errorf("failed to scan filed document: %w", err)
		}
		filed[documentID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate filed documents: %w", err)
	}

	return filed, nil
}
