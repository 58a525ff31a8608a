package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/repository"
)

type priceListRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPriceListRepository(db *sql.DB, dialect Dialect) repository.PriceListRepository {
	return &priceListRepository{db: db, dialect: dialect}
}

func (r *priceListRepository) List(ctx context.Context) ([]domain.PriceList, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(description, ''), valid_from, valid_until, active FROM price_lists ORDER BY valid_from DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PriceList
	for rows.Next() {
		var pl domain.PriceList
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Description, &pl.ValidFrom, &pl.ValidUntil, &pl.Active); err != nil {
			return nil, err
		}
		out = append(out, pl)
	}
	return out, rows.Err()
}

func (r *priceListRepository) DeactivateExpired(ctx context.Context, today domain.Date) (int64, error) {
	query := `UPDATE price_lists SET active = FALSE WHERE active = TRUE AND valid_until IS NOT NULL AND valid_until < ?`
	logger.DatabaseCall("UPDATE", query, "today", today.String())
	res, err := r.dialect.exec(ctx, r.db, query, today)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, err
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	return n, err
}

const selectLink = `SELECT pll.id, pll.price_list_id, pll.price_code_id, pll.active, pll.daily_prices, pll.price_extra_day,
                           pc.code, pc.label, pl.name, pl.valid_from, pl.valid_until
                    FROM price_list_links pll
                    JOIN price_codes pc ON pll.price_code_id = pc.id
                    JOIN price_lists pl ON pll.price_list_id = pl.id`

type priceListLinkRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPriceListLinkRepository(db *sql.DB, dialect Dialect) repository.PriceListLinkRepository {
	return &priceListLinkRepository{db: db, dialect: dialect}
}

func (r *priceListLinkRepository) List(ctx context.Context) ([]domain.PriceListLink, error) {
	rows, err := r.db.QueryContext(ctx, selectLink+` ORDER BY pc.code ASC, pl.valid_from DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PriceListLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *priceListLinkRepository) GetByID(ctx context.Context, id int64) (*domain.PriceListLink, error) {
	l, err := scanLink(r.dialect.queryRow(ctx, r.db, selectLink+` WHERE pll.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return l, err
}

func (r *priceListLinkRepository) Create(ctx context.Context, l *domain.PriceListLink) error {
	prices, err := json.Marshal(l.DailyPrices)
	if err != nil {
		return err
	}
	id, err := r.dialect.insert(ctx, r.db,
		`INSERT INTO price_list_links (price_code_id, price_list_id, daily_prices, price_extra_day, active) VALUES (?, ?, ?, ?, ?)`,
		l.PriceCodeID, l.PriceListID, string(prices), l.PriceExtraDay, l.Active)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func (r *priceListLinkRepository) Update(ctx context.Context, l *domain.PriceListLink) error {
	prices, err := json.Marshal(l.DailyPrices)
	if err != nil {
		return err
	}
	res, err := r.dialect.exec(ctx, r.db,
		`UPDATE price_list_links SET price_code_id = ?, price_list_id = ?, daily_prices = ?, price_extra_day = ?, active = ? WHERE id = ?`,
		l.PriceCodeID, l.PriceListID, string(prices), l.PriceExtraDay, l.Active, l.ID)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *priceListLinkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.dialect.exec(ctx, r.db, `DELETE FROM price_list_links WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *priceListLinkRepository) PairExists(ctx context.Context, priceCodeID, priceListID, excludeID int64) (bool, error) {
	var n int
	err := r.dialect.queryRow(ctx, r.db,
		`SELECT count(*) FROM price_list_links WHERE price_code_id = ? AND price_list_id = ? AND id <> ?`,
		priceCodeID, priceListID, excludeID).Scan(&n)
	return n > 0, err
}

func (r *priceListLinkRepository) FindActive(ctx context.Context, priceCodeID int64, day domain.Date) (*domain.PriceListLink, error) {
	query := selectLink + ` WHERE pll.price_code_id = ? AND pll.active = TRUE AND pl.active = TRUE
	          AND (pl.valid_from IS NULL OR pl.valid_from <= ?)
	          AND (pl.valid_until IS NULL OR pl.valid_until >= ?)
	          ORDER BY pl.valid_from DESC LIMIT 1`
	l, err := scanLink(r.dialect.queryRow(ctx, r.db, query, priceCodeID, day, day))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return l, err
}

func scanLink(s scanner) (*domain.PriceListLink, error) {
	var (
		l      domain.PriceListLink
		prices []byte
	)
	err := s.Scan(&l.ID, &l.PriceListID, &l.PriceCodeID, &l.Active, &prices, &l.PriceExtraDay,
		&l.PriceCodeCode, &l.PriceCodeName, &l.PriceListName, &l.PriceListValidFrom, &l.PriceListValidUntil)
	if err != nil {
		return nil, err
	}
	if l.DailyPrices, err = decodePrices(prices); err != nil {
		return nil, fmt.Errorf("price list link %d: %w", l.ID, err)
	}
	return &l, nil
}

func decodePrices(raw []byte) ([]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var prices []decimal.Decimal
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, fmt.Errorf("decode daily_prices: %w", err)
	}
	return prices, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
