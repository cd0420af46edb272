package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
)

// SaveShipment inserts a new shipment and returns its ID.
func (s *SQLiteStorage) SaveShipment(ctx context.Context, shipment *model.Shipment) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateShipment(shipment); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO shipments (
			description, hs_code, market,
			exporter_name, exporter_address, exporter_city, exporter_country,
			consignee_name, consignee_address, consignee_city, consignee_country,
			quantity, unit_price
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shipment.Description, shipment.HSCode, shipment.Market,
		shipment.Fields.Exporter.Name, shipment.Fields.Exporter.Address,
		shipment.Fields.Exporter.City, shipment.Fields.Exporter.Country,
		shipment.Fields.Consignee.Name, shipment.Fields.Consignee.Address,
		shipment.Fields.Consignee.City, shipment.Fields.Consignee.Country,
		shipment.Fields.Quantity, shipment.Fields.UnitPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save shipment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get shipment id: %w", err)
	}

	return id, nil
}

// GetShipment retrieves a shipment by ID.
func (s *SQLiteStorage) GetShipment(ctx context.Context, id int64) (*model.Shipment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateShipmentID(id); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, description, hs_code, market,
			exporter_name, exporter_address, exporter_city, exporter_country,
			consignee_name, consignee_address, consignee_city, consignee_country,
			quantity, unit_price, created_at, updated_at
		FROM shipments WHERE id = ?`, id)

	shipment, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shipment %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return shipment, nil
}

// ListShipments returns all shipments, newest first.
func (s *SQLiteStorage) ListShipments(ctx context.Context) ([]model.Shipment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, hs_code, market,
			exporter_name, exporter_address, exporter_city, exporter_country,
			consignee_name, consignee_address, consignee_city, consignee_country,
			quantity, unit_price, created_at, updated_at
		FROM shipments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var shipments []model.Shipment
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, *shipment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shipments: %w", err)
	}

	return shipments, nil
}

// UpdateShipmentFields replaces a shipment's form fields.
func (s *SQLiteStorage) UpdateShipmentFields(ctx context.Context, id int64, fields model.FieldCompletionContext) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateShipmentID(id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE shipments SET
			exporter_name = ?, exporter_address = ?, exporter_city = ?, exporter_country = ?,
			consignee_name = ?, consignee_address = ?, consignee_city = ?, consignee_country = ?,
			quantity = ?, unit_price = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		fields.Exporter.Name, fields.Exporter.Address, fields.Exporter.City, fields.Exporter.Country,
		fields.Consignee.Name, fields.Consignee.Address, fields.Consignee.City, fields.Consignee.Country,
		fields.Quantity, fields.UnitPrice, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update shipment fields: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shipment %d: %w", id, common.ErrNotFound)
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for shipment scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanShipment(row scanner) (*model.Shipment, error) {
	var shipment model.Shipment
	var hsCode, market sql.NullString

	err := row.Scan(
		&shipment.ID, &shipment.Description, &hsCode, &market,
		&shipment.Fields.Exporter.Name, &shipment.Fields.Exporter.Address,
		&shipment.Fields.Exporter.City, &shipment.Fields.Exporter.Country,
		&shipment.Fields.Consignee.Name, &shipment.Fields.Consignee.Address,
		&shipment.Fields.Consignee.City, &shipment.Fields.Consignee.Country,
		&shipment.Fields.Quantity, &shipment.Fields.UnitPrice,
		&shipment.CreatedAt, &shipment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	shipment.HSCode = hsCode.String
	shipment.Market = market.String

	return &shipment, nil
}
