package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/kakezan/ent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequence
}

// appendEvent draws the next global sequence number and hands it to save.
func (r *eventRepo) appendEvent(ctx context.Context, kind string, save func(seq int64) error) error {
	seq, err := r.seq.next(ctx)
	if err != nil {
		return err
	}
	if err := save(seq); err != nil {
		return fmt.Errorf("append %s event: %w", kind, err)
	}
	return nil
}

// sequence orders events across tables. Per-table IDs cannot tell whether
// a hint came before or after the answer to the same item, so every row
// carries a number from this single-row counter instead. It lives outside
// the ent schema because ent has no sequence type for sqlite.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequence = `CREATE TABLE IF NOT EXISTS global_sequence (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL DEFAULT 1
)`
	seedSequence = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	bumpSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func openSequence(ctx context.Context, db *sql.DB) (*sequence, error) {
	for _, stmt := range []string{createSequence, seedSequence} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("prepare sequence: %w", err)
		}
	}
	return &sequence{db: db}, nil
}

func (s *sequence) next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, bumpSequence).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

// eventPredicates turns QueryOpts into predicates over the EventMixin
// columns. Every event table shares those columns, so one builder serves all
// of the generated predicate types.
func eventPredicates[P ~func(*entsql.Selector)](opts QueryOpts) []P {
	var ps []P
	if opts.After > 0 {
		ps = append(ps, P(entsql.FieldGT("sequence", opts.After)))
	}
	if opts.Before > 0 {
		ps = append(ps, P(entsql.FieldLT("sequence", opts.Before)))
	}
	if !opts.From.IsZero() {
		ps = append(ps, P(entsql.FieldGTE("timestamp", opts.From)))
	}
	if !opts.To.IsZero() {
		ps = append(ps, P(entsql.FieldLTE("timestamp", opts.To)))
	}
	return ps
}
