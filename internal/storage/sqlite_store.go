package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/domain"
)

// ListFilter narrows and pages a phone listing. Zero values disable a filter.
type ListFilter struct {
	Limit        int
	Offset       int
	Brand        string
	MinPrice     float64
	MaxPrice     float64
	Availability string
	// Sort is "price_asc", "price_desc" or empty for id order.
	Sort string
}

func (f ListFilter) normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS phones (
  id TEXT PRIMARY KEY,
  brand TEXT NOT NULL,
  model TEXT NOT NULL,
  variant TEXT NOT NULL DEFAULT '',
  launch_date TEXT NOT NULL DEFAULT '',
  availability TEXT NOT NULL,
  mrp REAL NOT NULL DEFAULT 0,
  current_price REAL NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT '',
  specifications_json TEXT NOT NULL DEFAULT '{}',
  images_json TEXT NOT NULL DEFAULT '[]'
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_phones_brand ON phones(brand);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_phones_price ON phones(current_price);`); err != nil {
		return err
	}
	return nil
}

func (s *SQLiteStore) CountPhones(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phones`).Scan(&n)
	return n, err
}

const insertPhone = `
INSERT %s INTO phones
(id, brand, model, variant, launch_date, availability, mrp, current_price, currency, specifications_json, images_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// UpsertMany inserts or replaces the given phones in one transaction.
func (s *SQLiteStore) UpsertMany(ctx context.Context, items []domain.Phone) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(insertPhone, "OR REPLACE"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range items {
		args, err := phoneArgs(p)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("upsert phone %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// CreatePhone stores a new phone, assigning an id when it has none.
func (s *SQLiteStore) CreatePhone(ctx context.Context, p domain.Phone) (domain.Phone, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	args, err := phoneArgs(p)
	if err != nil {
		return domain.Phone{}, err
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(insertPhone, ""), args...); err != nil {
		return domain.Phone{}, err
	}
	return p, nil
}

func (s *SQLiteStore) DeletePhone(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM phones WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

const selectPhone = `
SELECT id, brand, model, variant, launch_date, availability, mrp, current_price, currency, specifications_json, images_json
FROM phones
`

func (s *SQLiteStore) GetPhone(ctx context.Context, id string) (domain.Phone, bool, error) {
	p, err := scanPhone(s.db.QueryRowContext(ctx, selectPhone+`WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Phone{}, false, nil
	}
	if err != nil {
		return domain.Phone{}, false, err
	}
	return p, true, nil
}

// GetPhones looks up phones by id. Found phones come back in the order of
// ids; missing lists the ids that do not exist.
func (s *SQLiteStore) GetPhones(ctx context.Context, ids []string) (found []domain.Phone, missing []string, err error) {
	for _, id := range ids {
		p, ok, err := s.GetPhone(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			missing = append(missing, id)
			continue
		}
		found = append(found, p)
	}
	return found, missing, nil
}

func (s *SQLiteStore) ListPhones(ctx context.Context, f ListFilter) ([]domain.Phone, int, error) {
	f = f.normalized()

	where := make([]string, 0, 4)
	args := make([]any, 0, 8)

	if strings.TrimSpace(f.Brand) != "" {
		where = append(where, "LOWER(brand) = LOWER(?)")
		args = append(args, strings.TrimSpace(f.Brand))
	}
	if f.MinPrice > 0 {
		where = append(where, "current_price >= ?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where = append(where, "current_price <= ?")
		args = append(args, f.MaxPrice)
	}
	if f.Availability != "" {
		where = append(where, "availability = ?")
		args = append(args, f.Availability)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	orderSQL := "ORDER BY id"
	switch f.Sort {
	case "price_asc":
		orderSQL = "ORDER BY current_price ASC, id"
	case "price_desc":
		orderSQL = "ORDER BY current_price DESC, id"
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM phones "+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsArgs := append(append([]any{}, args...), f.Limit, f.Offset)
	rows, err := s.db.QueryContext(ctx, selectPhone+whereSQL+"\n"+orderSQL+"\nLIMIT ? OFFSET ?", rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Phone
	for rows.Next() {
		p, err := scanPhone(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhone(r rowScanner) (domain.Phone, error) {
	var p domain.Phone
	var specJSON, imgJSON string
	if err := r.Scan(
		&p.ID, &p.Brand, &p.Model, &p.Variant, &p.LaunchDate, &p.Availability,
		&p.Pricing.MRP, &p.Pricing.CurrentPrice, &p.Pricing.Currency, &specJSON, &imgJSON,
	); err != nil {
		return domain.Phone{}, err
	}
	if err := json.Unmarshal([]byte(specJSON), &p.Specifications); err != nil {
		return domain.Phone{}, fmt.Errorf("decode specifications of %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(imgJSON), &p.Images); err != nil {
		return domain.Phone{}, fmt.Errorf("decode images of %s: %w", p.ID, err)
	}
	return p, nil
}

func phoneArgs(p domain.Phone) ([]any, error) {
	spec, err := json.Marshal(p.Specifications)
	if err != nil {
		return nil, fmt.Errorf("encode specifications of %s: %w", p.ID, err)
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	img, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode images of %s: %w", p.ID, err)
	}
	return []any{
		p.ID, p.Brand, p.Model, p.Variant, p.LaunchDate, string(p.Availability),
		p.Pricing.MRP, p.Pricing.CurrentPrice, p.Pricing.Currency, string(spec), string(img),
	}, nil
}
