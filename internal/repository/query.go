package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Page is a limit/offset window over a list query.
type Page struct {
	Limit  int
	Offset int
}

// where accumulates AND-ed SQL conditions. Conditions use ? placeholders which
// are renumbered into $n as they are added.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, args ...any) {
	var b strings.Builder
	i := 0
	for _, r := range clause {
		if r == '?' && i < len(args) {
			w.args = append(w.args, args[i])
			i++
			b.WriteString("$" + strconv.Itoa(len(w.args)))
			continue
		}
		b.WriteRune(r)
	}
	w.clauses = append(w.clauses, b.String())
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// paginate appends LIMIT/OFFSET placeholders and returns the clause and args.
func (w *where) paginate(p Page) (string, []any) {
	args := append([]any{}, w.args...)
	if p.Limit <= 0 {
		return "", args
	}
	args = append(args, p.Limit, p.Offset)
	return " LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)), args
}

func contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func countRows(ctx context.Context, q querier, from string, w *where) (int, error) {
	var n int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+from+w.String(), w.args...).Scan(&n); err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func deleteByID(ctx context.Context, q querier, table string, id int64) error {
	return expectOne(q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id))
}

func expectOne(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
