package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
)

// AdminRepository provides data access methods for the admins table.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail finds an admin account by email. Returns sql.ErrNoRows when absent.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM admins
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin account and fills in its generated id and
// timestamps. A colliding email surfaces as a pq unique violation.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = uuid.New().String()
	query := `
		INSERT INTO admins (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowxContext(ctx, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.Role,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
}
