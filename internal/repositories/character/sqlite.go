package character

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/pkg/clock"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name     TEXT    NOT NULL,
	level    INTEGER NOT NULL,
	data     TEXT    NOT NULL,
	saved_at INTEGER NOT NULL,
	PRIMARY KEY (name, level)
)`

// OpenSQLite opens (and creates if missing) the database at path and makes
// sure the snapshots table exists.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %s", path)
	}
	if _, err := db.ExecContext(ctx, snapshotSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "migrate sqlite %s", path)
	}
	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite snapshot repository.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a repository over a database opened with OpenSQLite
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM snapshots WHERE name = ?`,
		input.CharacterData.Name,
	).Scan(&count)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if count > 0 {
		return nil, errors.AlreadyExistsf("character %s already has %d snapshots",
			input.CharacterData.Name, count)
	}

	out, err := r.Save(ctx, SaveInput(input))
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Key: out.Key, SavedAt: out.SavedAt}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	snapshot := stamp(input.CharacterData, r.clock.Now())
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	slog.DebugContext(ctx, "saving snapshot row",
		"name", snapshot.Name,
		"level", snapshot.Level)

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (name, level, data, saved_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (name, level) DO UPDATE SET
		   data = excluded.data,
		   saved_at = excluded.saved_at`,
		snapshot.Name,
		snapshot.Level,
		string(data),
		snapshot.SavedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", snapshot.SnapshotKey())
	}

	return &SaveOutput{Key: snapshot.SnapshotKey(), SavedAt: snapshot.SavedAt}, nil
}

func (r *sqliteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	var (
		row   *sql.Row
		label string
	)
	if input.Level == LatestLevel {
		label = input.Name
		row = r.db.QueryRowContext(ctx,
			`SELECT data FROM snapshots WHERE name = ? ORDER BY level DESC LIMIT 1`,
			input.Name)
	} else {
		label = entities.SnapshotKey(input.Name, input.Level)
		row = r.db.QueryRowContext(ctx,
			`SELECT data FROM snapshots WHERE name = ? AND level = ?`,
			input.Name, input.Level)
	}

	slog.DebugContext(ctx, "loading snapshot row",
		"name", input.Name,
		"level", input.Level)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no snapshot %s", label).WithMeta("name", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to load snapshot %s", label)
	}

	var data entities.CharacterData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to unmarshal snapshot %s", label)
	}

	return &LoadOutput{CharacterData: &data}, nil
}

func (r *sqliteRepository) ListLevels(ctx context.Context, input ListLevelsInput) (*ListLevelsOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT level FROM snapshots WHERE name = ? ORDER BY level ASC`,
		input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list levels of %s", input.Name)
	}
	defer func() { _ = rows.Close() }()

	var levels []int
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, errors.Wrapf(err, "failed to scan level")
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list levels of %s", input.Name)
	}

	return &ListLevelsOutput{Levels: levels}, nil
}
