package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/boardly/internal/position"
	"github.com/thenoetrevino/boardly/internal/types"
)

// PositionWriter persists reorder write sets. Each change is applied only if
// the row still holds the position and container the snapshot saw.
type PositionWriter interface {
	ApplyListChanges(ctx context.Context, changes []position.Change[types.BoardID]) error
	ApplyCardChanges(ctx context.Context, changes []position.Change[types.ListID]) error
}

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*BoardRepo
	*ListRepo
	*CardRepo
	*LabelRepo
	*MemberRepo

	db *DB // nil inside a transaction
}

var _ PositionWriter = (*Repository)(nil)

// NewRepository creates a Repository over the connection pool.
func NewRepository(db *DB) *Repository {
	r := newRepository(conn{q: db.DB, dialect: db.Dialect})
	r.db = db
	return r
}

func newRepository(c conn) *Repository {
	return &Repository{
		BoardRepo:  &BoardRepo{c: c},
		ListRepo:   &ListRepo{c: c},
		CardRepo:   &CardRepo{c: c},
		LabelRepo:  &LabelRepo{c: c},
		MemberRepo: &MemberRepo{c: c},
	}
}

// Dialect reports the SQL flavour of the underlying connection.
func (r *Repository) Dialect() Dialect {
	return r.BoardRepo.c.dialect
}

// WithTx runs fn with a Repository bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Calling
// WithTx on a transactional Repository runs fn in the same transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return withTx(ctx, r.db.DB, func(q querier) error {
		return fn(newRepository(conn{q: q, dialect: r.db.Dialect}))
	})
}

// Close closes the underlying pool.
func (r *Repository) Close() error {
	if r.db == nil {
		return fmt.Errorf("close called on a transactional repository")
	}
	return r.db.Close()
}
