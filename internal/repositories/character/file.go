package character

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/pkg/clock"
)

type fileRepository struct {
	dir   string
	codec Codec
	clock clock.Clock
}

// FileConfig contains configuration for the file snapshot repository.
type FileConfig struct {
	Dir    string
	Format string
	Clock  clock.Clock
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	errors.ValidateEnum("format", cfg.Format, Formats(), vb)
	return vb.Build()
}

// NewFile creates a repository keeping one file per snapshot in cfg.Dir.
// The directory is created if missing.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := CodecFor(cfg.Format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to create snapshot dir %s", cfg.Dir)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		dir:   cfg.Dir,
		codec: codec,
		clock: c,
	}, nil
}

func (r *fileRepository) path(name string, level int) string {
	return filepath.Join(r.dir, entities.SnapshotKey(name, level)+r.codec.Extension())
}

func (r *fileRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	levels, err := r.levels(input.CharacterData.Name)
	if err != nil {
		return nil, err
	}
	if len(levels) > 0 {
		return nil, errors.AlreadyExistsf("character %s already has %d snapshots",
			input.CharacterData.Name, len(levels))
	}

	out, err := r.Save(ctx, SaveInput(input))
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Key: out.Key, SavedAt: out.SavedAt}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	snapshot := stamp(input.CharacterData, r.clock.Now())
	raw, err := r.codec.Marshal(snapshot)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode snapshot")
	}

	target := r.path(snapshot.Name, snapshot.Level)
	slog.DebugContext(ctx, "writing snapshot file",
		"key", snapshot.SnapshotKey(),
		"path", target)

	// Write beside the target and rename so a failed write never truncates
	// an existing snapshot.
	tmp, err := os.CreateTemp(r.dir, ".snapshot-*")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to write %s", target)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to write %s", target)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to write %s", target)
	}

	return &SaveOutput{Key: snapshot.SnapshotKey(), SavedAt: snapshot.SavedAt}, nil
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	level := input.Level
	if level == LatestLevel {
		levels, err := r.levels(input.Name)
		if err != nil {
			return nil, err
		}
		if level, err = latest(input.Name, levels); err != nil {
			return nil, err
		}
	}

	source := r.path(input.Name, level)
	slog.DebugContext(ctx, "reading snapshot file",
		"name", input.Name,
		"level", level,
		"path", source)

	raw, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no snapshot %s", entities.SnapshotKey(input.Name, level)).
				WithMeta("name", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to read %s", source)
	}

	var data entities.CharacterData
	if err := r.codec.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to decode %s", source)
	}

	return &LoadOutput{CharacterData: &data}, nil
}

func (r *fileRepository) ListLevels(_ context.Context, input ListLevelsInput) (*ListLevelsOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	levels, err := r.levels(input.Name)
	if err != nil {
		return nil, err
	}
	return &ListLevelsOutput{Levels: levels}, nil
}

// levels scans the directory for "<name>_lvl<NN><ext>" files
func (r *fileRepository) levels(name string) ([]int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to list %s", r.dir)
	}

	prefix := name + "_lvl"
	ext := r.codec.Extension()
	var levels []int
	for _, entry := range entries {
		file := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(file, prefix) || !strings.HasSuffix(file, ext) {
			continue
		}
		digits := strings.TrimSuffix(strings.TrimPrefix(file, prefix), ext)
		level, err := strconv.Atoi(digits)
		if err != nil || level < 1 {
			continue
		}
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels, nil
}
