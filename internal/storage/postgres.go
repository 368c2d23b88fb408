package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository ---

func (p *PostgresStorage) ListUsers(ctx context.Context) ([]internal.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT name, email, phone, password_hash FROM users ORDER BY seq`)
	if err != nil {
		p.logger.Errorf("failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	users := []internal.User{}
	for rows.Next() {
		var u internal.User
		if err := rows.Scan(&u.Name, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
			p.logger.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *PostgresStorage) AppendUser(ctx context.Context, u *internal.User) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO users (name, email, phone, password_hash) VALUES ($1, $2, $3, $4)`,
		u.Name, u.Email, u.Phone, u.PasswordHash)
	if isUniqueViolation(err) {
		return errs.ErrDuplicateEmail
	}
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
	}
	return err
}

// --- ReportRepository ---

const reportColumns = `id, email, phone_number, age, gender, occupation, stress, bp, heart_rate,
sleep_duration, tea_coffee, bmi, snoring, work_hours, result, risk_level, recommendations, date`

func scanReport(row pgx.Row, r *internal.Report) error {
	return row.Scan(&r.ID, &r.Email, &r.PhoneNumber, &r.Age, &r.Gender, &r.Occupation,
		&r.Stress, &r.BloodPress, &r.HeartRate, &r.SleepDur, &r.TeaCoffee, &r.BMI,
		&r.Snoring, &r.WorkHours, &r.Result, &r.RiskLevel, &r.Recommendations, &r.Date)
}

func (p *PostgresStorage) ListReports(ctx context.Context) ([]internal.Report, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY seq`)
	if err != nil {
		p.logger.Errorf("failed to query reports: %v", err)
		return nil, err
	}
	defer rows.Close()

	reports := []internal.Report{}
	for rows.Next() {
		var r internal.Report
		if err := scanReport(rows, &r); err != nil {
			p.logger.Errorf("failed to scan report: %v", err)
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (p *PostgresStorage) AppendReport(ctx context.Context, r *internal.Report) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO reports (`+reportColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		r.ID, r.Email, r.PhoneNumber, r.Age, r.Gender, r.Occupation, r.Stress, r.BloodPress,
		r.HeartRate, r.SleepDur, r.TeaCoffee, r.BMI, r.Snoring, r.WorkHours, r.Result,
		r.RiskLevel, r.Recommendations, r.Date)
	if err != nil {
		p.logger.Errorf("failed to insert report: %v", err)
	}
	return err
}

func (p *PostgresStorage) GetReport(ctx context.Context, id string) (*internal.Report, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	var r internal.Report
	if err := scanReport(row, &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrReportNotFound
		}
		p.logger.Errorf("failed to scan report: %v", err)
		return nil, err
	}
	return &r, nil
}

// --- Compile-time assertions ---
var _ UserRepository = (*PostgresStorage)(nil)
var _ ReportRepository = (*PostgresStorage)(nil)
