package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-portal/internal/domain"
)

// ApplicationWithJob is an application row joined with a summary of its job,
// shaped for the student's own-applications view.
type ApplicationWithJob struct {
	domain.Application
	JobTitle    string
	JobCompany  string
	JobLocation string
	JobType     domain.JobType
	JobSalary   string
	JobStatus   domain.JobStatus
}

// ApplicationWithApplicant is an application row joined with the applicant's
// profile, shaped for the HR review view.
type ApplicationWithApplicant struct {
	domain.Application
	ApplicantName       string
	ApplicantEmail      string
	ApplicantPhone      string
	ApplicantSkills     []string
	ApplicantEducation  string
	ApplicantExperience string
	ApplicantImage      string
}

// ApplicationOverview joins both sides for admin listings and dashboards.
type ApplicationOverview struct {
	domain.Application
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	JobTitle       string
	JobCompany     string
	JobLocation    string
}

// ApplicationRepository encapsulates application persistence. Create inserts
// the row and bumps the job's applications_count in one transaction; the
// (job_id, applicant_id) unique index is the backstop against concurrent
// duplicate applies.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, application *domain.Application) error
	ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error)
	ListByJob(ctx context.Context, jobID string) ([]ApplicationWithApplicant, error)
	ListAll(ctx context.Context) ([]ApplicationOverview, error)
	ListRecent(ctx context.Context, limit int) ([]ApplicationOverview, error)
	Count(ctx context.Context) (int, error)
	StatusCountsByApplicant(ctx context.Context, applicantID string) (map[domain.ApplicationStatus]int, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.resume, a.status, a.notes,
               a.applied_at, a.created_at, a.updated_at`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insert = `
        INSERT INTO applications (job_id, applicant_id, resume, status, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, applied_at, created_at, updated_at`
	err = tx.QueryRow(ctx, insert,
		application.JobID,
		application.ApplicantID,
		application.Resume,
		application.Status,
		application.Notes,
	).Scan(&application.ID, &application.AppliedAt, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	// Atomic add at the database; never read-modify-write.
	const bump = `UPDATE jobs SET applications_count = applications_count + 1, updated_at=NOW() WHERE id=$1`
	if _, err := tx.Exec(ctx, bump, application.JobID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id=$1`
	var application domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, id), &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.job_id=$1 AND a.applicant_id=$2`
	var application domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, jobID, applicantID), &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, application *domain.Application) error {
	const query = `
        UPDATE applications SET status=$1, notes=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		application.Status,
		application.Notes,
		application.ID,
	).Scan(&application.UpdatedAt)
	if err == pgx.ErrNoRows {
		return pgx.ErrNoRows
	}
	return err
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationWithJob, error) {
	query := `SELECT ` + applicationColumns + `, j.title, j.company, j.location, j.type, j.salary, j.status
        FROM applications a JOIN jobs j ON j.id = a.job_id
        WHERE a.applicant_id=$1 ORDER BY a.applied_at DESC`
	rows, err := r.pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ApplicationWithJob
	for rows.Next() {
		var row ApplicationWithJob
		if err := rows.Scan(
			&row.ID, &row.JobID, &row.ApplicantID, &row.Resume, &row.Status, &row.Notes,
			&row.AppliedAt, &row.CreatedAt, &row.UpdatedAt,
			&row.JobTitle, &row.JobCompany, &row.JobLocation, &row.JobType, &row.JobSalary, &row.JobStatus,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]ApplicationWithApplicant, error) {
	query := `SELECT ` + applicationColumns + `, u.name, u.email, u.phone, u.skills,
               u.education, u.experience, u.profile_image
        FROM applications a JOIN users u ON u.id = a.applicant_id
        WHERE a.job_id=$1 ORDER BY a.applied_at DESC`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ApplicationWithApplicant
	for rows.Next() {
		var row ApplicationWithApplicant
		if err := rows.Scan(
			&row.ID, &row.JobID, &row.ApplicantID, &row.Resume, &row.Status, &row.Notes,
			&row.AppliedAt, &row.CreatedAt, &row.UpdatedAt,
			&row.ApplicantName, &row.ApplicantEmail, &row.ApplicantPhone, &row.ApplicantSkills,
			&row.ApplicantEducation, &row.ApplicantExperience, &row.ApplicantImage,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]ApplicationOverview, error) {
	return r.queryOverview(ctx, 0)
}

func (r *applicationRepository) ListRecent(ctx context.Context, limit int) ([]ApplicationOverview, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.queryOverview(ctx, limit)
}

func (r *applicationRepository) queryOverview(ctx context.Context, limit int) ([]ApplicationOverview, error) {
	query := `SELECT ` + applicationColumns + `, u.name, u.email, u.phone, j.title, j.company, j.location
        FROM applications a
        JOIN users u ON u.id = a.applicant_id
        JOIN jobs j ON j.id = a.job_id
        ORDER BY a.applied_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ApplicationOverview
	for rows.Next() {
		var row ApplicationOverview
		if err := rows.Scan(
			&row.ID, &row.JobID, &row.ApplicantID, &row.Resume, &row.Status, &row.Notes,
			&row.AppliedAt, &row.CreatedAt, &row.UpdatedAt,
			&row.ApplicantName, &row.ApplicantEmail, &row.ApplicantPhone,
			&row.JobTitle, &row.JobCompany, &row.JobLocation,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *applicationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	return count, err
}

func (r *applicationRepository) StatusCountsByApplicant(ctx context.Context, applicantID string) (map[domain.ApplicationStatus]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM applications WHERE applicant_id=$1 GROUP BY status`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ApplicationStatus]int)
	for rows.Next() {
		var status domain.ApplicationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

type applicationScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row applicationScanner, application *domain.Application) error {
	return row.Scan(
		&application.ID,
		&application.JobID,
		&application.ApplicantID,
		&application.Resume,
		&application.Status,
		&application.Notes,
		&application.AppliedAt,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
}
