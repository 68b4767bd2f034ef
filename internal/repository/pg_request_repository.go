package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prismworks/backend/internal/model"
)

// PgRequestRepository is the PostgreSQL implementation of RequestRepository.
type PgRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgRequestRepository creates a PgRequestRepository backed by the given pool.
func NewPgRequestRepository(pool *pgxpool.Pool) *PgRequestRepository {
	return &PgRequestRepository{pool: pool}
}

var _ RequestRepository = (*PgRequestRepository)(nil)

const requestSelectCols = `id, name, email, COALESCE(business_name, ''), project_types,
	description, timeline, budget, status, created_at, updated_at`

// Save inserts a new project_requests row. project_types is stored as a
// text[] column; pgx maps []string to it directly.
func (r *PgRequestRepository) Save(ctx context.Context, req *model.ProjectRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO project_requests (name, email, business_name, project_types, description, timeline, budget, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		req.Name, req.Email, req.BusinessName, req.ProjectTypes,
		req.Description, req.Timeline, req.Budget, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

// FindByID returns the request with the given id, or ErrNotFound.
func (r *PgRequestRepository) FindByID(ctx context.Context, id string) (*model.ProjectRequest, error) {
	var q model.ProjectRequest
	err := r.pool.QueryRow(ctx,
		`SELECT `+requestSelectCols+` FROM project_requests WHERE id = $1`, id,
	).Scan(&q.ID, &q.Name, &q.Email, &q.BusinessName, &q.ProjectTypes,
		&q.Description, &q.Timeline, &q.Budget, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns project requests filtered by status and paginated by
// limit/offset.
func (r *PgRequestRepository) List(ctx context.Context, opts model.RequestListOptions) ([]*model.ProjectRequest, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + requestSelectCols + ` FROM project_requests ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

// ListAll returns every project request, newest first.
func (r *PgRequestRepository) ListAll(ctx context.Context) ([]*model.ProjectRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+requestSelectCols+` FROM project_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

// UpdateStatus changes a request's status. Returns ErrNotFound when no row
// matches the id.
func (r *PgRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE project_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRequests(rows pgx.Rows) ([]*model.ProjectRequest, error) {
	var reqs []*model.ProjectRequest
	for rows.Next() {
		var q model.ProjectRequest
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.BusinessName, &q.ProjectTypes,
			&q.Description, &q.Timeline, &q.Budget, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, &q)
	}
	return reqs, rows.Err()
}
