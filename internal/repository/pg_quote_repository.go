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

// PgQuoteRepository is the PostgreSQL implementation of QuoteRepository.
type PgQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuoteRepository creates a PgQuoteRepository backed by the given pool.
func NewPgQuoteRepository(pool *pgxpool.Pool) *PgQuoteRepository {
	return &PgQuoteRepository{pool: pool}
}

var _ QuoteRepository = (*PgQuoteRepository)(nil)

const quoteSelectCols = `id, name, phone, COALESCE(email, ''), service_type, issue_type,
	property_type, zip_code, COALESCE(description, ''), status, created_at, updated_at`

// Save inserts a new quote_requests row.
func (r *PgQuoteRepository) Save(ctx context.Context, q *model.QuoteRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quote_requests (name, phone, email, service_type, issue_type, property_type, zip_code, description, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), $9)
		 RETURNING id, created_at, updated_at`,
		q.Name, q.Phone, q.Email, q.ServiceType, q.IssueType,
		q.PropertyType, q.ZipCode, q.Description, q.Status,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// FindByID returns the quote request with the given id, or ErrNotFound.
func (r *PgQuoteRepository) FindByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	var q model.QuoteRequest
	err := r.pool.QueryRow(ctx,
		`SELECT `+quoteSelectCols+` FROM quote_requests WHERE id = $1`, id,
	).Scan(&q.ID, &q.Name, &q.Phone, &q.Email, &q.ServiceType, &q.IssueType,
		&q.PropertyType, &q.ZipCode, &q.Description, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns quote requests filtered by status and paginated by limit/offset.
func (r *PgQuoteRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error) {
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

	query := `SELECT ` + quoteSelectCols + ` FROM quote_requests ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

// ListAll returns every quote request, newest first.
func (r *PgQuoteRepository) ListAll(ctx context.Context) ([]*model.QuoteRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+quoteSelectCols+` FROM quote_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

// UpdateStatus changes a quote request's status. Returns ErrNotFound when
// no row matches the id.
func (r *PgQuoteRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quote_requests SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuotes(rows pgx.Rows) ([]*model.QuoteRequest, error) {
	var quotes []*model.QuoteRequest
	for rows.Next() {
		var q model.QuoteRequest
		if err := rows.Scan(&q.ID, &q.Name, &q.Phone, &q.Email, &q.ServiceType, &q.IssueType,
			&q.PropertyType, &q.ZipCode, &q.Description, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, &q)
	}
	return quotes, rows.Err()
}
