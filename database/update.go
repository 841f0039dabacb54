package database

import (
	"fmt"
	"strings"
	"time"
)

// binder produces the SQL value for one optionally-present update field. It
// reports whether the field was supplied and validates the value before any
// statement text is assembled.
type binder func() (value any, present bool, err error)

// updateField pairs a column name with its binder. Column names come only
// from the fixed literal tables declared next to each repository method;
// caller input is never interpolated into SQL text.
type updateField struct {
	column string
	bind   binder
}

func bindString(p *string) binder {
	return func() (any, bool, error) {
		if p == nil {
			return nil, false, nil
		}
		return *p, true, nil
	}
}

func bindInt(p *int) binder {
	return func() (any, bool, error) {
		if p == nil {
			return nil, false, nil
		}
		return *p, true, nil
	}
}

// bindBool coerces to the 0/1 integer representation used by all boolean
// columns.
func bindBool(p *bool) binder {
	return func() (any, bool, error) {
		if p == nil {
			return nil, false, nil
		}
		if *p {
			return 1, true, nil
		}
		return 0, true, nil
	}
}

// bindTimestamp validates an RFC 3339 string before binding. An empty string
// clears the column to NULL.
func bindTimestamp(p *string) binder {
	return func() (any, bool, error) {
		if p == nil {
			return nil, false, nil
		}
		if *p == "" {
			return nil, true, nil
		}
		t, err := time.Parse(time.RFC3339, *p)
		if err != nil {
			return nil, true, fmt.Errorf("invalid timestamp %q: %w", *p, err)
		}
		return formatTime(t), true, nil
	}
}

// execUpdate assembles and executes a partial UPDATE against a single row.
// Only supplied fields are written, in the order they appear in the field
// table. When touchUpdatedAt is set the updated_at column is always
// refreshed; without it an empty field set is a successful no-op that never
// touches storage. Zero affected rows means the id matched nothing.
func (r *Repository) execUpdate(table, id string, fields []updateField, touchUpdatedAt bool) error {
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)

	for _, f := range fields {
		value, present, err := f.bind()
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		sets = append(sets, f.column+" = ?")
		args = append(args, value)
	}

	if touchUpdatedAt {
		sets = append(sets, "updated_at = ?")
		args = append(args, formatTime(time.Now()))
	} else if len(sets) == 0 {
		return nil
	}

	args = append(args, id)

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
