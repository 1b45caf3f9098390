package repo

import (
	"context"
	"database/sql"
	"time"
)

// Calculation is one saved mass-balance computation.
type Calculation struct {
	ID             int       `json:"id"`
	InitialMassKg  float64   `json:"initial_mass_kg"`
	InitialBrixPct float64   `json:"initial_brix_pct"`
	FinalBrixPct   float64   `json:"final_brix_pct"`
	FinalMassKg    float64   `json:"final_mass_kg"`
	SugarMassKg    float64   `json:"sugar_mass_kg"`
	CreatedAt      time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error)
	ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error)
	ClearCalculations(ctx context.Context, userID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error) {
	var id int
	query := `INSERT INTO calculations
		(user_id, initial_mass_kg, initial_brix_pct, final_brix_pct, final_mass_kg, sugar_mass_kg)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID,
		c.InitialMassKg, c.InitialBrixPct, c.FinalBrixPct, c.FinalMassKg, c.SugarMassKg).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error) {
	query := `SELECT id, initial_mass_kg, initial_brix_pct, final_brix_pct, final_mass_kg, sugar_mass_kg, created_at
		FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.InitialMassKg, &c.InitialBrixPct, &c.FinalBrixPct,
			&c.FinalMassKg, &c.SugarMassKg, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ClearCalculations(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM calculations WHERE user_id=$1", userID)
	return err
}
