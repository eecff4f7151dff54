package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/dbx"
	"github.com/dmitrijs2005/imagevault/internal/server/migrations"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const assetColumns = `asset_id, owner_id, storage_key, display_name, content_type, byte_size, tags, description, created_at, updated_at, status`

// Postgres is a Backend over the assets table, paginated by keyset on
// (created_at, asset_id).
type Postgres struct {
	db dbx.DBTX
}

func NewPostgres(db dbx.DBTX) *Postgres {
	return &Postgres{db: db}
}

// OpenPostgres opens and pings a pgx-backed *sql.DB.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storeUnavailable("db ping", err)
	}
	return db, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Put upserts a by id. Identity columns are never rewritten. A pending
// write over a completed row is skipped and reported as
// ErrStatusRegression.
func (p *Postgres) Put(ctx context.Context, a *models.Asset) error {
	tags, err := json.Marshal(tagsOrEmpty(a.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (asset_id)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			content_type = EXCLUDED.content_type,
			byte_size = EXCLUDED.byte_size,
			tags = EXCLUDED.tags,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at,
			status = EXCLUDED.status
		WHERE assets.status = 'pending' OR EXCLUDED.status = 'completed';
	`
	res, err := p.db.ExecContext(ctx, query,
		a.ID, a.OwnerID, a.StorageKey, a.DisplayName, a.ContentType, a.ByteSize,
		string(tags), a.Description, a.CreatedAt, a.UpdatedAt, string(a.Status))
	if err != nil {
		return storeUnavailable("db upsert asset", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeUnavailable("db upsert asset", err)
	}
	if n == 0 {
		// The conflict clause skipped a pending write over a completed row.
		return regressed(a)
	}
	return nil
}

// Update rewrites the mutable columns of an existing row. A row deleted in
// the meantime is not recreated.
func (p *Postgres) Update(ctx context.Context, a *models.Asset) error {
	tags, err := json.Marshal(tagsOrEmpty(a.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	query := `
		UPDATE assets SET
			display_name = $2,
			content_type = $3,
			byte_size = $4,
			tags = $5,
			description = $6,
			updated_at = $7,
			status = $8
		WHERE asset_id = $1 AND (status = 'pending' OR $8 = 'completed');
	`
	res, err := p.db.ExecContext(ctx, query,
		a.ID, a.DisplayName, a.ContentType, a.ByteSize,
		string(tags), a.Description, a.UpdatedAt, string(a.Status))
	if err != nil {
		return storeUnavailable("db update asset", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeUnavailable("db update asset", err)
	}
	if n > 0 {
		return nil
	}
	if a.Completed() {
		return common.ErrNotFound
	}
	if _, err := p.Get(ctx, a.ID); err != nil {
		return err
	}
	return regressed(a)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*models.Asset, error) {
	var a models.Asset
	var tags, status string
	if err := row.Scan(&a.ID, &a.OwnerID, &a.StorageKey, &a.DisplayName, &a.ContentType, &a.ByteSize,
		&tags, &a.Description, &a.CreatedAt, &a.UpdatedAt, &status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of %s: %w", a.ID, err)
	}
	if len(a.Tags) == 0 {
		a.Tags = nil
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	a.Status = models.Status(status)
	return &a, nil
}

func (p *Postgres) Get(ctx context.Context, id string) (*models.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1`
	a, err := scanAsset(p.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, storeUnavailable("db select asset", err)
	}
	return a, nil
}

func (p *Postgres) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM assets WHERE asset_id = $1`, id); err != nil {
		return storeUnavailable("db delete asset", err)
	}
	return nil
}

func (p *Postgres) Range(ctx context.Context, q RangeQuery) (*RangePage, error) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.OwnerID != "" {
		conds = append(conds, "owner_id = "+arg(q.OwnerID))
	}
	if q.From != nil {
		conds = append(conds, "created_at >= "+arg(*q.From))
	}
	if q.To != nil {
		conds = append(conds, "created_at <= "+arg(*q.To))
	}
	if q.After != nil {
		conds = append(conds, fmt.Sprintf("(created_at, asset_id) > (%s, %s)", arg(q.After.CreatedAt), arg(q.After.ID)))
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, asset_id`
	if q.Limit > 0 {
		query += ` LIMIT ` + arg(q.Limit)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeUnavailable("db select assets", err)
	}
	defer rows.Close()

	page := &RangePage{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		page.Assets = append(page.Assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeUnavailable("db select assets", err)
	}

	if q.Limit > 0 && len(page.Assets) == q.Limit {
		next := PositionOf(page.Assets[len(page.Assets)-1])
		page.Next = &next
	}
	return page, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
