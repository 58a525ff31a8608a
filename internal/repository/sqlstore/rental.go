package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/repository"
)

const (
	insertCustomer = `INSERT INTO customers (last_name, first_name, phone, email, address, postal_code, city) VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertRental   = `INSERT INTO rentals (customer_id, start_date, end_date, comments, payment_method, payment_status) VALUES (?, ?, ?, ?, ?, ?)`
	insertItem     = `INSERT INTO rental_items (rental_id, item_number, start_date, end_date, price, discount, total) VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertService  = `INSERT INTO rental_services (rental_id, service_type) VALUES (?, ?)`

	selectRental = `SELECT r.id, r.customer_id, r.start_date, r.end_date, r.comments, r.payment_method, r.payment_status, r.created_at,
	                       c.last_name, c.first_name, c.phone, c.email, c.address, c.postal_code, c.city
	                FROM rentals r JOIN customers c ON c.id = r.customer_id`
)

type rentalRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewRentalRepository(db *sql.DB, dialect Dialect) repository.RentalRepository {
	return &rentalRepository{db: db, dialect: dialect}
}

func (r *rentalRepository) CreateOrder(ctx context.Context, rt *domain.Rental) error {
	logger.EnterMethod("rentalRepository.CreateOrder", "items", len(rt.Items), "services", len(rt.Services))
	if rt.Customer == nil {
		return errors.New("rental has no customer")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &repository.StageError{Stage: repository.StageBegin, Err: err}
	}
	// Releases the connection on every path; a no-op after Commit.
	defer tx.Rollback()

	c := rt.Customer
	logger.DatabaseCall("INSERT", "customers")
	customerID, err := r.dialect.insert(ctx, tx, insertCustomer,
		c.LastName, nullString(c.FirstName), nullString(c.Phone), nullString(c.Email),
		nullString(c.Address), nullString(c.PostalCode), nullString(c.City))
	if err != nil {
		return r.fail(repository.StageCustomer, err)
	}

	logger.DatabaseCall("INSERT", "rentals", "customerID", customerID)
	rentalID, err := r.dialect.insert(ctx, tx, insertRental,
		customerID, rt.StartDate, rt.EndDate, nullString(rt.Comments), nullString(rt.PaymentMethod), domain.PaymentStatusPending)
	if err != nil {
		return r.fail(repository.StageRental, err)
	}

	itemIDs := make([]int64, len(rt.Items))
	for i, it := range rt.Items {
		id, err := r.dialect.insert(ctx, tx, insertItem,
			rentalID, it.ItemNumber, it.StartDate, it.EndDate, it.Price, it.Discount, it.Total)
		if err != nil {
			return r.fail(repository.StageItems, fmt.Errorf("item %d (%s): %w", i+1, it.ItemNumber, err))
		}
		itemIDs[i] = id
	}

	for _, s := range rt.Services {
		if _, err := r.dialect.exec(ctx, tx, insertService, rentalID, s); err != nil {
			return r.fail(repository.StageServices, fmt.Errorf("service %s: %w", s, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return r.fail(repository.StageCommit, err)
	}

	c.ID = customerID
	rt.ID = rentalID
	rt.CustomerID = customerID
	rt.PaymentStatus = domain.PaymentStatusPending
	for i := range rt.Items {
		rt.Items[i].ID = itemIDs[i]
		rt.Items[i].RentalID = rentalID
	}
	logger.DatabaseResult("CreateOrder", int64(2+len(rt.Items)+len(rt.Services)), nil, "rentalID", rentalID)
	return nil
}

func (r *rentalRepository) fail(stage string, err error) error {
	serr := &repository.StageError{Stage: stage, Err: err}
	logger.ExitMethodWithError("rentalRepository.CreateOrder", serr, "stage", stage)
	return serr
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	row := r.dialect.queryRow(ctx, r.db, selectRental+` WHERE r.id = ?`, id)
	rt, err := scanRental(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if rt.Items, err = r.items(ctx, id); err != nil {
		return nil, err
	}
	if rt.Services, err = r.services(ctx, id); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) items(ctx context.Context, rentalID int64) ([]domain.RentalItem, error) {
	rows, err := r.dialect.query(ctx, r.db,
		`SELECT id, rental_id, item_number, start_date, end_date, price, discount, total FROM rental_items WHERE rental_id = ? ORDER BY id`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		var it domain.RentalItem
		if err := rows.Scan(&it.ID, &it.RentalID, &it.ItemNumber, &it.StartDate, &it.EndDate, &it.Price, &it.Discount, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *rentalRepository) services(ctx context.Context, rentalID int64) ([]domain.ServiceType, error) {
	rows, err := r.dialect.query(ctx, r.db, `SELECT service_type FROM rental_services WHERE rental_id = ? ORDER BY id`, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.ServiceType
	for rows.Next() {
		var s domain.ServiceType
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// List returns rentals newest first, without items or services.
func (r *rentalRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Rental, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := r.dialect.query(ctx, r.db, selectRental+` ORDER BY r.created_at DESC, r.id DESC LIMIT ? OFFSET ?`, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRental(s scanner) (*domain.Rental, error) {
	var (
		rt                                   domain.Rental
		c                                    domain.Customer
		comments, method                     sql.NullString
		first, phone, email, addr, zip, city sql.NullString
	)
	err := s.Scan(&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &comments, &method, &rt.PaymentStatus, &rt.CreatedAt,
		&c.LastName, &first, &phone, &email, &addr, &zip, &city)
	if err != nil {
		return nil, err
	}
	rt.Comments = str(comments)
	rt.PaymentMethod = str(method)
	c.ID = rt.CustomerID
	c.FirstName = str(first)
	c.Phone = str(phone)
	c.Email = str(email)
	c.Address = str(addr)
	c.PostalCode = str(zip)
	c.City = str(city)
	rt.Customer = &c
	return &rt, nil
}
