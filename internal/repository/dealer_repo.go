package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// DealerRepository provides data access methods for the dealers table.
type DealerRepository struct {
	db *sqlx.DB
}

// NewDealerRepository creates a new DealerRepository.
func NewDealerRepository(db *sqlx.DB) *DealerRepository {
	return &DealerRepository{db: db}
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

const dealerColumns = `id, dealership_name, dealer_code, address, contact_person, contact_number,
	pincode, city, district, state, country, services, email, website, status, created_at, updated_at`

// Create inserts a new dealer and fills in its generated id and timestamps.
// A colliding dealer_code surfaces as a pq unique violation.
func (r *DealerRepository) Create(ctx context.Context, d *models.Dealer) error {
	d.ID = uuid.New().String()
	query := `
		INSERT INTO dealers (id, dealership_name, dealer_code, address, contact_person, contact_number,
			pincode, city, district, state, country, services, email, website, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		d.ID, d.DealershipName, d.DealerCode, d.Address, d.ContactPerson, d.ContactNumber,
		d.Pincode, d.City, d.District, d.State, d.Country, d.Services, d.Email, d.Website, d.Status,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

// GetByID finds a dealer by id. Returns sql.ErrNoRows when absent.
func (r *DealerRepository) GetByID(ctx context.Context, id string) (*models.Dealer, error) {
	var d models.Dealer
	err := r.db.GetContext(ctx, &d, `SELECT `+dealerColumns+` FROM dealers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByCode finds a dealer by its unique dealer code.
func (r *DealerRepository) GetByCode(ctx context.Context, code string) (*models.Dealer, error) {
	var d models.Dealer
	err := r.db.GetContext(ctx, &d, `SELECT `+dealerColumns+` FROM dealers WHERE dealer_code = $1`, code)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List retrieves dealers matching the filter. A zero filter returns all
// dealers. Name matches case-insensitively as a substring; state and city
// match exactly.
func (r *DealerRepository) List(ctx context.Context, filter models.DealerFilter) ([]*models.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers`
	var conds []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, `dealership_name ILIKE $`+strconv.Itoa(len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		conds = append(conds, `state = $`+strconv.Itoa(len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conds = append(conds, `city = $`+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	var dealers []*models.Dealer
	if err := r.db.SelectContext(ctx, &dealers, query, args...); err != nil {
		return nil, err
	}
	return dealers, nil
}

// Update persists the given dealer record in full. Returns sql.ErrNoRows
// when the id does not resolve.
func (r *DealerRepository) Update(ctx context.Context, d *models.Dealer) error {
	query := `
		UPDATE dealers
		SET dealership_name = $1, dealer_code = $2, address = $3, contact_person = $4,
			contact_number = $5, pincode = $6, city = $7, district = $8, state = $9,
			country = $10, services = $11, email = $12, website = $13, status = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		d.DealershipName, d.DealerCode, d.Address, d.ContactPerson, d.ContactNumber,
		d.Pincode, d.City, d.District, d.State, d.Country, d.Services, d.Email,
		d.Website, d.Status, d.ID,
	).Scan(&d.UpdatedAt)
}

// Delete removes a dealer permanently. Returns sql.ErrNoRows when the id
// does not resolve.
func (r *DealerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dealers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
