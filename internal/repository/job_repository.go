package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-portal/internal/domain"
)

// JobFilter captures public listing query parameters. Listings filtered
// through it only ever see active jobs.
type JobFilter struct {
	Search     *string
	Type       *domain.JobType
	Location   *string
	Experience *string
}

// JobWithPoster is a job row joined with the posting user's public fields.
type JobWithPoster struct {
	domain.Job
	PosterName    string
	PosterEmail   string
	PosterCompany string
}

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context, filter JobFilter) ([]JobWithPoster, error)
	ListAll(ctx context.Context) ([]JobWithPoster, error)
	ListByPoster(ctx context.Context, posterID string) ([]domain.Job, error)
	ListRecent(ctx context.Context, limit int) ([]JobWithPoster, error)
	CountsByStatus(ctx context.Context) (map[domain.JobStatus]int, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `j.id, j.title, j.company, j.location, j.type, j.salary, j.description,
               j.requirements, j.skills_required, j.experience, j.openings, j.deadline,
               j.posted_by, j.status, j.applications_count, j.created_at, j.updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, company, location, type, salary, description,
            requirements, skills_required, experience, openings, deadline, posted_by, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, applications_count, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.Salary,
		job.Description,
		job.Requirements,
		job.SkillsRequired,
		job.Experience,
		job.Openings,
		job.Deadline,
		job.PostedBy,
		job.Status,
	).Scan(&job.ID, &job.ApplicationsCount, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, company=$2, location=$3, type=$4, salary=$5,
            description=$6, requirements=$7, skills_required=$8, experience=$9,
            openings=$10, deadline=$11, status=$12, updated_at=NOW()
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Company,
		job.Location,
		job.Type,
		job.Salary,
		job.Description,
		job.Requirements,
		job.SkillsRequired,
		job.Experience,
		job.Openings,
		job.Deadline,
		job.Status,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id=$1`
	var job domain.Job
	if err := scanJob(r.pool.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) ListActive(ctx context.Context, filter JobFilter) ([]JobWithPoster, error) {
	clauses := []string{"j.status = 'active'"}
	args := []any{}

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(j.title) LIKE %s OR LOWER(j.company) LIKE %s OR LOWER(j.description) LIKE %s)",
			placeholder, placeholder, placeholder))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("j.type=$%d", len(args)))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.Location))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(j.location) LIKE $%d", len(args)))
	}
	if filter.Experience != nil && strings.TrimSpace(*filter.Experience) != "" {
		args = append(args, *filter.Experience)
		clauses = append(clauses, fmt.Sprintf("j.experience=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s, u.name, u.email, u.company
        FROM jobs j JOIN users u ON u.id = j.posted_by
        WHERE %s ORDER BY j.created_at DESC`, jobColumns, strings.Join(clauses, " AND "))

	return r.queryWithPoster(ctx, query, args...)
}

func (r *jobRepository) ListAll(ctx context.Context) ([]JobWithPoster, error) {
	query := fmt.Sprintf(`SELECT %s, u.name, u.email, u.company
        FROM jobs j JOIN users u ON u.id = j.posted_by
        ORDER BY j.created_at DESC`, jobColumns)
	return r.queryWithPoster(ctx, query)
}

func (r *jobRepository) ListRecent(ctx context.Context, limit int) ([]JobWithPoster, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s, u.name, u.email, u.company
        FROM jobs j JOIN users u ON u.id = j.posted_by
        ORDER BY j.created_at DESC LIMIT %d`, jobColumns, limit)
	return r.queryWithPoster(ctx, query)
}

func (r *jobRepository) queryWithPoster(ctx context.Context, query string, args ...any) ([]JobWithPoster, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []JobWithPoster
	for rows.Next() {
		var row JobWithPoster
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Company,
			&row.Location,
			&row.Type,
			&row.Salary,
			&row.Description,
			&row.Requirements,
			&row.SkillsRequired,
			&row.Experience,
			&row.Openings,
			&row.Deadline,
			&row.PostedBy,
			&row.Status,
			&row.ApplicationsCount,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.PosterName,
			&row.PosterEmail,
			&row.PosterCompany,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *jobRepository) ListByPoster(ctx context.Context, posterID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.posted_by=$1 ORDER BY j.created_at DESC`
	rows, err := r.pool.Query(ctx, query, posterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) CountsByStatus(ctx context.Context) (map[domain.JobStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.JobStatus]int)
	for rows.Next() {
		var status domain.JobStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

type jobScanner interface {
	Scan(dest ...any) error
}

func scanJob(row jobScanner, job *domain.Job) error {
	return row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Type,
		&job.Salary,
		&job.Description,
		&job.Requirements,
		&job.SkillsRequired,
		&job.Experience,
		&job.Openings,
		&job.Deadline,
		&job.PostedBy,
		&job.Status,
		&job.ApplicationsCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}
