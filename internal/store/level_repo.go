package store

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/blake2b"
)

// LevelRow is one published level payload. Data holds the compressed
// encoded bytes exactly as the codec produced them; the store never
// looks inside.
type LevelRow struct {
	ID            uint64
	Name          string
	Author        string
	FormatVersion int
	ContentHash   string
	Data          []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LevelRepo struct {
	db *DB
}

func NewLevelRepo(db *DB) *LevelRepo {
	return &LevelRepo{db: db}
}

// ContentHash returns the hex BLAKE2b-256 digest of a payload, the
// store's dedup and integrity key.
func ContentHash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Publish stores a payload and returns its published ID. Publishing
// bytes that are already stored returns the existing ID instead of a
// duplicate row.
func (r *LevelRepo) Publish(ctx context.Context, name, author string, formatVersion int, data []byte) (uint64, error) {
	hash := ContentHash(data)

	var id int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id FROM levels WHERE content_hash = $1`, hash,
	).Scan(&id)
	if err == nil {
		return uint64(id), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	err = r.db.Pool.QueryRow(ctx,
		`INSERT INTO levels (name, author, format_version, content_hash, data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		name, author, formatVersion, hash, data,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Fetch loads a published level by ID. A missing ID is (nil, nil).
func (r *LevelRepo) Fetch(ctx context.Context, id uint64) (*LevelRow, error) {
	row := &LevelRow{}
	var dbID int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, author, format_version, content_hash, data, created_at, updated_at
		 FROM levels WHERE id = $1`, int64(id),
	).Scan(
		&dbID, &row.Name, &row.Author, &row.FormatVersion,
		&row.ContentHash, &row.Data, &row.CreatedAt, &row.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	row.ID = uint64(dbID)
	return row, nil
}

// Delete removes a published level and reports whether it existed.
func (r *LevelRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM levels WHERE id = $1`, int64(id))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
