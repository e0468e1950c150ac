package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/dinosaur"
	"github.com/dbsmedya/dinofacts/internal/logger"
	"github.com/dbsmedya/dinofacts/internal/sqlutil"
)

// Store reads dinosaur records from a MySQL table.
//
// Expected columns: dinosaur_id, name, pronunciation, info, length_in_meters,
// period, mya, meaning_of_name (nullable), diet (nullable). The mya column
// holds a comma-separated list such as "154,150".
type Store struct {
	db    *sql.DB
	query string
	log   *logger.Logger
}

// NewStore builds a Store over db. table and schema are validated and quoted.
func NewStore(db *sql.DB, schema, table string, log *logger.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	qualified, err := sqlutil.QualifiedTable(schema, table)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Store{
		db: db,
		query: "SELECT dinosaur_id, name, pronunciation, info, length_in_meters, period, mya, meaning_of_name, diet FROM " +
			qualified + " ORDER BY name, dinosaur_id",
		log: log,
	}, nil
}

// Load returns every record in the table, ordered by name.
func (s *Store) Load(ctx context.Context) ([]dinosaur.Record, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dinosaurs: %w", err)
	}
	defer rows.Close()

	var records []dinosaur.Record
	for rows.Next() {
		var (
			r       dinosaur.Record
			mya     string
			meaning sql.NullString
			diet    sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Pronunciation, &r.Info, &r.LengthInMeters,
			&r.Period, &mya, &meaning, &diet); err != nil {
			return nil, fmt.Errorf("failed to scan dinosaur row: %w", err)
		}

		r.Mya, err = ParseMya(mya)
		if err != nil {
			return nil, fmt.Errorf("dinosaur %q: %w", r.ID, err)
		}
		r.MeaningOfName = meaning.String
		r.Diet = diet.String

		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dinosaur rows: %w", err)
	}

	s.log.Debugw("loaded dinosaurs from database", "count", len(records))
	return records, nil
}

// ParseMya parses a comma-separated mya column. An empty value yields an
// empty slice; the queries treat that record as never alive.
func ParseMya(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mya value %q: %w", p, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Loader connects, loads all records, and disconnects on every call.
type Loader struct {
	Config *config.MySQLConfig
	Log    *logger.Logger
}

// Load implements the record loader contract for a MySQL source.
func (l *Loader) Load(ctx context.Context) ([]dinosaur.Record, error) {
	m := NewManager(l.Config, l.Log)
	if err := m.Connect(ctx); err != nil {
		return nil, err
	}
	defer m.Close()

	store, err := NewStore(m.DB, "", l.Config.Table, l.Log)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx)
}
