package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/formforge/formforge-server/internal/model"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// querier is the subset of pgx satisfied by both the pool and a transaction,
// so the same statement helpers run inside and outside a transactional scope.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Views carries the projection functions a resource supplies as data: how an
// entity maps onto its read shapes, and how the client-supplied shapes
// produce or patch an entity. Keeping "what a client may send" and "what a
// client may see" as separate functions lets the create view carry secrets
// that never appear in any output projection.
type Views[E, B, D, L, C, U any] struct {
	ToBase      func(E) B
	ToDetail    func(E) D
	ToList      func(E) L
	FromCreate  func(C) (E, error)
	ApplyUpdate func(*E, U)
}

// Descriptor maps an entity onto its table: the select list used for reads
// and the writable columns with their value extractor for inserts and
// updates. Server-managed columns (id, created_at, updated_at) stay out of
// WriteColumns; the database assigns them.
type Descriptor[E any] struct {
	Entity       string
	Table        string
	Columns      []string
	WriteColumns []string
	WriteValues  func(E) []any
	DefaultOrder string

	// Conflict, when set, is returned in place of a unique constraint
	// violation on insert or update.
	Conflict error
}

// Repository implements uniform CRUD over one entity type. Resources embed it
// and supply their projections and SQL mapping as data rather than by
// subclassing behavior.
type Repository[E, B, D, L, C, U any] struct {
	db    *Connection
	desc  Descriptor[E]
	views Views[E, B, D, L, C, U]
}

func NewRepository[E, B, D, L, C, U any](db *Connection, desc Descriptor[E], views Views[E, B, D, L, C, U]) *Repository[E, B, D, L, C, U] {
	return &Repository[E, B, D, L, C, U]{
		db:    db,
		desc:  desc,
		views: views,
	}
}

// Create stores a new record built from the create view and returns its base
// projection.
func (r *Repository[E, B, D, L, C, U]) Create(ctx context.Context, view C) (B, error) {
	var zero B

	entity, err := r.views.FromCreate(view)
	if err != nil {
		return zero, err
	}

	saved, err := r.insert(ctx, r.db, entity)
	if err != nil {
		return zero, r.writeErr("create", err)
	}

	return r.views.ToBase(saved), nil
}

// writeErr maps a failed insert or update onto the descriptor's conflict
// error when a unique constraint was violated, and wraps anything else.
func (r *Repository[E, B, D, L, C, U]) writeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if r.desc.Conflict != nil && errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return r.desc.Conflict
	}
	return fmt.Errorf("failed to %s %s: %w", op, r.desc.Entity, err)
}

// GetByID fetches exactly one record by surrogate key and returns its detail
// projection. A miss is reported as model.NotFoundError.
func (r *Repository[E, B, D, L, C, U]) GetByID(ctx context.Context, id int64) (D, error) {
	var zero D

	entity, err := r.getByID(ctx, r.db, id, false)
	if err != nil {
		return zero, err
	}

	return r.views.ToDetail(entity), nil
}

// GetAll fetches the whole collection as list projections. An empty
// collection yields an empty slice, never an error.
func (r *Repository[E, B, D, L, C, U]) GetAll(ctx context.Context) ([]L, error) {
	order := r.desc.DefaultOrder
	if order == "" {
		order = "id"
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(r.desc.Columns, ", "), r.desc.Table, order)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.desc.Entity, err)
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.desc.Entity, err)
	}

	views := make([]L, 0, len(entities))
	for _, entity := range entities {
		views = append(views, r.views.ToList(entity))
	}
	return views, nil
}

// Update fetches the record, applies only the fields present in the update
// view and persists the result, all inside one transaction so a concurrent
// delete cannot be observed as a partial update. The refreshed base
// projection is returned.
func (r *Repository[E, B, D, L, C, U]) Update(ctx context.Context, id int64, view U) (B, error) {
	var out B

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		entity, err := r.getByID(ctx, tx, id, true)
		if err != nil {
			return err
		}

		r.views.ApplyUpdate(&entity, view)

		saved, err := r.update(ctx, tx, id, entity)
		if err != nil {
			return r.writeErr("update", err)
		}

		out = r.views.ToBase(saved)
		return nil
	})
	if err != nil {
		var zero B
		return zero, err
	}

	return out, nil
}

// Delete removes the record by surrogate key. The existence check and the
// removal share one transaction.
func (r *Repository[E, B, D, L, C, U]) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := r.getByID(ctx, tx, id, true); err != nil {
			return err
		}

		query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.desc.Table)
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", r.desc.Entity, err)
		}
		return nil
	})
}

func (r *Repository[E, B, D, L, C, U]) insert(ctx context.Context, q querier, entity E) (E, error) {
	var zero E

	placeholders := make([]string, len(r.desc.WriteColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.desc.Table,
		strings.Join(r.desc.WriteColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.desc.Columns, ", "))

	rows, err := q.Query(ctx, query, r.desc.WriteValues(entity)...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
}

func (r *Repository[E, B, D, L, C, U]) update(ctx context.Context, q querier, id int64, entity E) (E, error) {
	var zero E

	assignments := make([]string, len(r.desc.WriteColumns))
	for i, col := range r.desc.WriteColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		r.desc.Table,
		strings.Join(assignments, ", "),
		len(r.desc.WriteColumns)+1,
		strings.Join(r.desc.Columns, ", "))

	args := append(r.desc.WriteValues(entity), id)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
}

func (r *Repository[E, B, D, L, C, U]) getByID(ctx context.Context, q querier, id int64, forUpdate bool) (E, error) {
	var zero E

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1",
		strings.Join(r.desc.Columns, ", "), r.desc.Table)
	if forUpdate {
		query += " FOR UPDATE"
	}

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return zero, fmt.Errorf("failed to get %s by id: %w", r.desc.Entity, err)
	}

	entity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, &model.NotFoundError{Entity: r.desc.Entity, ID: id}
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get %s by id: %w", r.desc.Entity, err)
	}

	return entity, nil
}
