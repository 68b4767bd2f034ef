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

// PgLeadRepository is the PostgreSQL implementation of LeadRepository.
type PgLeadRepository struct {
	pool *pgxpool.Pool
}

// NewPgLeadRepository creates a PgLeadRepository backed by the given pool.
func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

var _ LeadRepository = (*PgLeadRepository)(nil)

const leadSelectCols = `id, name, email, COALESCE(company, ''), COALESCE(phone, ''),
	source, COALESCE(notes, ''), status, last_contacted_at, created_at, updated_at`

// Save inserts a new leads row. The caller assigns lead.ID up front (leads
// are created app-side, not by a public form).
func (r *PgLeadRepository) Save(ctx context.Context, lead *model.Lead) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO leads (id, name, email, company, phone, source, notes, status, last_contacted_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9)
		 RETURNING created_at, updated_at`,
		lead.ID, lead.Name, lead.Email, lead.Company, lead.Phone,
		lead.Source, lead.Notes, lead.Status, lead.LastContactedAt,
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)
}

// FindByID returns the lead with the given id, or ErrNotFound.
func (r *PgLeadRepository) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	var l model.Lead
	err := r.pool.QueryRow(ctx,
		`SELECT `+leadSelectCols+` FROM leads WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Email, &l.Company, &l.Phone,
		&l.Source, &l.Notes, &l.Status, &l.LastContactedAt, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns leads filtered by status and paginated by limit/offset.
func (r *PgLeadRepository) List(ctx context.Context, opts model.LeadListOptions) ([]*model.Lead, error) {
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

	query := `SELECT ` + leadSelectCols + ` FROM leads ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListAll returns every lead, newest first.
func (r *PgLeadRepository) ListAll(ctx context.Context) ([]*model.Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+leadSelectCols+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeads(rows)
}

// Update rewrites all mutable lead fields.
func (r *PgLeadRepository) Update(ctx context.Context, lead *model.Lead) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leads
		 SET name = $1, email = $2, company = NULLIF($3, ''), phone = NULLIF($4, ''),
		     source = $5, notes = NULLIF($6, ''), status = $7, last_contacted_at = $8,
		     updated_at = NOW()
		 WHERE id = $9`,
		lead.Name, lead.Email, lead.Company, lead.Phone,
		lead.Source, lead.Notes, lead.Status, lead.LastContactedAt, lead.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus changes a lead's status and stamps last_contacted_at when the
// lead moves to "contacted".
func (r *PgLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leads
		 SET status = $1,
		     last_contacted_at = CASE WHEN $1 = 'contacted' THEN NOW() ELSE last_contacted_at END,
		     updated_at = NOW()
		 WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a lead.
func (r *PgLeadRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanLeads(rows pgx.Rows) ([]*model.Lead, error) {
	var leads []*model.Lead
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Company, &l.Phone,
			&l.Source, &l.Notes, &l.Status, &l.LastContactedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}
