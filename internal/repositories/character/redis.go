package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/level-manager/internal/redis"
)

const (
	snapshotKeyPrefix = "character:"
	levelIndexPrefix  = "character:levels:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis snapshot repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed snapshot repository. Each snapshot is a
// JSON string; a sorted set per name indexes the saved levels.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	indexKey := levelIndexPrefix + input.CharacterData.Name
	count, err := r.client.ZCard(ctx, indexKey).Result()
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

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateData(input.CharacterData); err != nil {
		return nil, err
	}

	snapshot := stamp(input.CharacterData, r.clock.Now())
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	key := snapshotKeyPrefix + snapshot.SnapshotKey()
	indexKey := levelIndexPrefix + snapshot.Name
	slog.DebugContext(ctx, "saving snapshot",
		"key", key,
		"index_key", indexKey)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(snapshot.Level),
		Member: strconv.Itoa(snapshot.Level),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to save snapshot",
			"key", key,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to save snapshot %s", snapshot.SnapshotKey())
	}

	return &SaveOutput{Key: snapshot.SnapshotKey(), SavedAt: snapshot.SavedAt}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateLoad(input); err != nil {
		return nil, err
	}

	level := input.Level
	if level == LatestLevel {
		levels, err := r.levels(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if level, err = latest(input.Name, levels); err != nil {
			return nil, err
		}
	}

	key := snapshotKeyPrefix + entities.SnapshotKey(input.Name, level)
	slog.DebugContext(ctx, "loading snapshot", "key", key)

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no snapshot %s", entities.SnapshotKey(input.Name, level)).
				WithMeta("name", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot")
	}

	var data entities.CharacterData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to unmarshal snapshot %s", key)
	}

	return &LoadOutput{CharacterData: &data}, nil
}

func (r *redisRepository) ListLevels(ctx context.Context, input ListLevelsInput) (*ListLevelsOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	levels, err := r.levels(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &ListLevelsOutput{Levels: levels}, nil
}

// levels reads the level index of name in ascending score order
func (r *redisRepository) levels(ctx context.Context, name string) ([]int, error) {
	indexKey := levelIndexPrefix + name
	entries, err := r.client.ZRangeWithScores(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read level index %s", indexKey)
	}

	levels := make([]int, 0, len(entries))
	for _, z := range entries {
		levels = append(levels, int(z.Score))
	}

	slog.DebugContext(ctx, "read level index",
		"index_key", indexKey,
		"count", len(levels))

	return levels, nil
}
