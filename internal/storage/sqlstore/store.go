package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"tripplanner/internal/domain"
)

type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

const colsPerRow = 8

// Store persists the attraction catalog in MySQL or Postgres.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, d Dialect) *Store { return &Store{db: db, dialect: d} }

// Open connects with the driver registered for the dialect and pings once.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d := Dialect(strings.ToLower(driver))
	switch d {
	case MySQL, Postgres:
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
	db, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", d, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", d, err)
	}
	return New(db, d), nil
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	rows, err := s.db.QueryContext(ctx, listAttractionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list attractions: %w", err)
	}
	defer rows.Close()

	var out []domain.Attraction
	for rows.Next() {
		var a domain.Attraction
		if err := rows.Scan(&a.City, &a.Type, &a.Name, &a.EntranceFee, &a.Lat, &a.Lon, &a.Reviews); err != nil {
			return nil, fmt.Errorf("scan attraction: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: %w", err)
	}
	return out, nil
}

// UpsertAttractions writes all rows in one statement keyed on (city, name). Row i is
// stored at position offset+i, so concurrent batches keep dataset order. A key
// repeated within the batch keeps its last values and position.
func (s *Store) UpsertAttractions(ctx context.Context, offset int, as []domain.Attraction) error {
	rows := dedupe(offset, as)
	if len(rows) == 0 {
		return nil
	}
	values := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*colsPerRow)
	for i, r := range rows {
		a := r.Attraction
		values = append(values, s.placeholders(i*colsPerRow, colsPerRow))
		args = append(args, r.pos, a.City, a.Type, a.Name, a.EntranceFee, a.Lat, a.Lon, a.Reviews)
	}

	var b strings.Builder
	b.WriteString(insertAttractionsPrefix)
	b.WriteString(strings.Join(values, ","))
	if s.dialect == Postgres {
		b.WriteString(postgresOnConflict)
	} else {
		b.WriteString(mysqlOnDup)
	}

	if _, err := s.db.ExecContext(ctx, b.String(), args...); err != nil {
		return fmt.Errorf("upsert %d attractions: %w", len(rows), err)
	}
	return nil
}

// placeholders renders one VALUES tuple: (?,?,...) for MySQL, ($n,...) for Postgres.
func (s *Store) placeholders(offset, n int) string {
	p := make([]string, n)
	for i := range p {
		if s.dialect == Postgres {
			p[i] = "$" + strconv.Itoa(offset+i+1)
		} else {
			p[i] = "?"
		}
	}
	return "(" + strings.Join(p, ",") + ")"
}

type positioned struct {
	domain.Attraction
	pos int
}

func dedupe(offset int, as []domain.Attraction) []positioned {
	idx := make(map[[2]string]int, len(as))
	out := make([]positioned, 0, len(as))
	for i, a := range as {
		r := positioned{Attraction: a, pos: offset + i}
		k := [2]string{a.City, a.Name}
		if j, ok := idx[k]; ok {
			out[j] = r
			continue
		}
		idx[k] = len(out)
		out = append(out, r)
	}
	return out
}
