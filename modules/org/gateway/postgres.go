package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// PostgresGateway stores each collection in a table of the same name. Rows
// travel as jsonb so the wire record shape is exactly the table row.
type PostgresGateway struct {
	pool *pgxpool.Pool
}

func NewPostgresGateway(pool *pgxpool.Pool) *PostgresGateway {
	return &PostgresGateway{pool: pool}
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return errors.Errorf("invalid identifier %q", name)
	}
	return nil
}

func (p *PostgresGateway) ListAll(ctx context.Context, collection string) ([]Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	rows, err := p.pool.Query(ctx, fmt.Sprintf("SELECT to_jsonb(t.*) FROM %s t ORDER BY t.id", collection))
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrapf(err, "scan %s", collection)
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.Wrapf(err, "decode %s row", collection)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}
	return out, nil
}

func (p *PostgresGateway) CreateOne(ctx context.Context, collection string, rec Record) (Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	cols, args, err := columnArgs(rec)
	if err != nil {
		return nil, err
	}
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING to_jsonb(%s.*)",
		collection, strings.Join(cols, ", "), strings.Join(placeholders, ", "), collection,
	)
	var raw []byte
	if err := p.pool.QueryRow(ctx, q, args...).Scan(&raw); err != nil {
		return nil, errors.Wrapf(err, "insert into %s", collection)
	}
	var created Record
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, errors.Wrapf(err, "decode %s row", collection)
	}
	return created, nil
}

func (p *PostgresGateway) CreateMany(ctx context.Context, collection string, recs []Record) ([]Record, error) {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		created, err := p.CreateOne(ctx, collection, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

func (p *PostgresGateway) UpdateOne(ctx context.Context, collection string, id string, patch Record) (Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	delete(patch, "id")
	cols, args, err := columnArgs(patch)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.Errorf("empty patch for %s", collection)
	}
	assigns := make([]string, len(cols))
	for i, col := range cols {
		assigns[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id)
	q := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING to_jsonb(%s.*)",
		collection, strings.Join(assigns, ", "), len(args), collection,
	)
	var raw []byte
	if err := p.pool.QueryRow(ctx, q, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "%s %s", collection, id)
		}
		return nil, errors.Wrapf(err, "update %s", collection)
	}
	var updated Record
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, errors.Wrapf(err, "decode %s row", collection)
	}
	return updated, nil
}

func (p *PostgresGateway) DeleteOne(ctx context.Context, collection string, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	tag, err := p.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", collection), id)
	if err != nil {
		return errors.Wrapf(err, "delete from %s", collection)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrNotFound, "%s %s", collection, id)
	}
	return nil
}

func (p *PostgresGateway) DeleteWhere(ctx context.Context, collection string, field string, value any) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := checkIdent(field); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", collection, field), value)
	return errors.Wrapf(err, "delete from %s by %s", collection, field)
}

func (p *PostgresGateway) GetSingleton(ctx context.Context, collection string) (Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	var raw []byte
	err := p.pool.QueryRow(ctx, fmt.Sprintf("SELECT to_jsonb(t.*) FROM %s t LIMIT 1", collection)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", collection)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrapf(err, "decode %s row", collection)
	}
	return rec, nil
}

func (p *PostgresGateway) UpsertSingleton(ctx context.Context, collection string, rec Record) (Record, error) {
	existing, err := p.GetSingleton(ctx, collection)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return p.CreateOne(ctx, collection, rec)
	}
	id, _ := existing["id"].(string)
	return p.UpdateOne(ctx, collection, id, rec)
}

// columnArgs splits a record into a stable column list and matching args.
// Column names come from entity json tags run through the case mapper, but
// they still pass identifier validation before entering SQL text.
func columnArgs(rec Record) ([]string, []any, error) {
	cols := make([]string, 0, len(rec))
	for col := range rec {
		if err := checkIdent(col); err != nil {
			return nil, nil, err
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, rec[col])
	}
	return cols, args, nil
}
