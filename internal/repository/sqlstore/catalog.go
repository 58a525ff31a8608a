package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/repository"
)

// itemColumns is the fixed column set written for catalog items.
var itemColumns = []string{
	"item_number", "brand", "model_type", "gender", "brake_type", "frame_height",
	"wheel_size", "color", "year", "license_plate", "lock_type",
	"frame_number", "lock_number", "key_number", "status",
	"item_type_id", "price_code_id",
}

// itemValues must stay aligned with itemColumns.
func itemValues(it *domain.Item) []any {
	return []any{
		it.ItemNumber, nullString(it.Brand), nullString(it.ModelType), nullString(it.Gender), nullString(it.BrakeType), nullString(it.FrameHeight),
		nullString(it.WheelSize), nullString(it.Color), nullInt(it.Year), nullString(it.LicensePlate), nullString(it.LockType),
		it.FrameNumber, nullString(it.LockNumber), nullString(it.KeyNumber), it.Status,
		it.ItemTypeID, it.PriceCodeID,
	}
}

const selectItem = `SELECT i.id, i.item_number, i.brand, i.model_type, i.gender, i.brake_type, i.frame_height,
                           i.wheel_size, i.color, i.year, i.license_plate, i.lock_type,
                           i.frame_number, i.lock_number, i.key_number, i.status, i.item_type_id, i.price_code_id,
                           it.name, pc.code, pc.label
                    FROM items i
                    LEFT JOIN item_types it ON i.item_type_id = it.id
                    LEFT JOIN price_codes pc ON i.price_code_id = pc.id`

type catalogRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewCatalogRepository(db *sql.DB, dialect Dialect) repository.CatalogRepository {
	return &catalogRepository{db: db, dialect: dialect}
}

func (r *catalogRepository) ListItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, COALESCE(description, '') FROM item_types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ItemType
	for rows.Next() {
		var t domain.ItemType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *catalogRepository) ListPriceCodes(ctx context.Context) ([]domain.PriceCode, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, label FROM price_codes ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PriceCode
	for rows.Next() {
		var pc domain.PriceCode
		if err := rows.Scan(&pc.ID, &pc.Code, &pc.Label); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *catalogRepository) ListAccommodationTypes(ctx context.Context, activeOnly bool) ([]domain.AccommodationType, error) {
	query := `SELECT id, name, active, created_at FROM accommodation_types`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	rows, err := r.db.QueryContext(ctx, query+` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AccommodationType
	for rows.Next() {
		var a domain.AccommodationType
		if err := rows.Scan(&a.ID, &a.Name, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *catalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, selectItem+` ORDER BY i.item_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *catalogRepository) GetItemByNumber(ctx context.Context, itemNumber string) (*domain.Item, error) {
	return r.getItem(ctx, selectItem+` WHERE i.item_number = ?`, itemNumber)
}

func (r *catalogRepository) getItem(ctx context.Context, query string, arg any) (*domain.Item, error) {
	it, err := scanItem(r.dialect.queryRow(ctx, r.db, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return it, err
}

func (r *catalogRepository) CreateItem(ctx context.Context, it *domain.Item) error {
	query := fmt.Sprintf(`INSERT INTO items (%s) VALUES (%s)`, strings.Join(itemColumns, ", "), placeholders(len(itemColumns)))
	logger.DatabaseCall("INSERT", "items", "itemNumber", it.ItemNumber)
	id, err := r.dialect.insert(ctx, r.db, query, itemValues(it)...)
	logger.DatabaseResult("INSERT", 1, err, "table", "items")
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (r *catalogRepository) UpdateItem(ctx context.Context, it *domain.Item) error {
	sets := make([]string, len(itemColumns))
	for i, col := range itemColumns {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf(`UPDATE items SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.dialect.exec(ctx, r.db, query, append(itemValues(it), it.ID)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepository) ItemConflict(ctx context.Context, itemNumber, frameNumber string, excludeID int64) (bool, error) {
	var n int
	err := r.dialect.queryRow(ctx, r.db,
		`SELECT count(*) FROM items WHERE (item_number = ? OR frame_number = ?) AND id <> ?`,
		itemNumber, frameNumber, excludeID).Scan(&n)
	return n > 0, err
}

func scanItem(s scanner) (*domain.Item, error) {
	var (
		it                                                domain.Item
		brand, model, gender, brake, height, wheel, color sql.NullString
		plate, lockType, lockNo, keyNo                    sql.NullString
		year                                              sql.NullInt64
		typeName, code, label                             sql.NullString
	)
	err := s.Scan(&it.ID, &it.ItemNumber, &brand, &model, &gender, &brake, &height,
		&wheel, &color, &year, &plate, &lockType,
		&it.FrameNumber, &lockNo, &keyNo, &it.Status, &it.ItemTypeID, &it.PriceCodeID,
		&typeName, &code, &label)
	if err != nil {
		return nil, err
	}
	it.Brand, it.ModelType, it.Gender, it.BrakeType = str(brand), str(model), str(gender), str(brake)
	it.FrameHeight, it.WheelSize, it.Color = str(height), str(wheel), str(color)
	it.Year = int(year.Int64)
	it.LicensePlate, it.LockType, it.LockNumber, it.KeyNumber = str(plate), str(lockType), str(lockNo), str(keyNo)
	if typeName.Valid {
		it.ItemType = &domain.ItemType{ID: it.ItemTypeID, Name: typeName.String}
	}
	if code.Valid {
		it.PriceCode = &domain.PriceCode{ID: it.PriceCodeID, Code: code.String, Label: label.String}
	}
	return &it, nil
}
