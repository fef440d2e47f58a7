// Package character persists character snapshots, one per name and level.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/level-manager/internal/repositories/character Repository

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
)

const (
	// LatestLevel asks Load for the highest saved level
	LatestLevel = 0

	errCharacterNil  = "character cannot be nil"
	errNameEmpty     = "character name cannot be empty"
	errNameSeparator = "character name cannot contain a path separator"
)

// Repository defines the interface for snapshot persistence
type Repository interface {
	// Create stores the first snapshot of a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the name already has snapshots
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Save stores a snapshot under the character's name and level. Saving
	// the same level twice overwrites the earlier snapshot.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the snapshot of a name at a level, or the highest level
	// when Level is LatestLevel
	// Returns errors.InvalidArgument for an empty name or negative level
	// Returns errors.NotFound if no matching snapshot exists
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// ListLevels returns the saved levels of a name in ascending order
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.Internal for storage failures
	ListLevels(ctx context.Context, input ListLevelsInput) (*ListLevelsOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	CharacterData *entities.CharacterData
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Key     string
	SavedAt time.Time
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	CharacterData *entities.CharacterData
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	Key     string
	SavedAt time.Time
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct {
	Name  string
	Level int
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	CharacterData *entities.CharacterData
}

// ListLevelsInput defines the input for listing saved levels
type ListLevelsInput struct {
	Name string
}

// ListLevelsOutput defines the output for listing saved levels
type ListLevelsOutput struct {
	Levels []int
}

func validateName(name string) error {
	if name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.InvalidArgument(errNameSeparator)
	}
	return nil
}

func validateData(data *entities.CharacterData) error {
	if data == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if err := validateName(data.Name); err != nil {
		return err
	}
	if data.Level < 1 {
		return errors.InvalidArgumentf("level must be at least 1, got %d", data.Level)
	}
	return nil
}

func validateLoad(input LoadInput) error {
	if err := validateName(input.Name); err != nil {
		return err
	}
	if input.Level < 0 {
		return errors.InvalidArgumentf("level cannot be negative, got %d", input.Level)
	}
	return nil
}

// stamp copies data with SavedAt set, leaving the caller's value untouched
func stamp(data *entities.CharacterData, now time.Time) *entities.CharacterData {
	snapshot := *data
	snapshot.SavedAt = now.UTC()
	return &snapshot
}

// latest returns the last element of ascending levels
func latest(name string, levels []int) (int, error) {
	if len(levels) == 0 {
		return 0, errors.NotFoundf("no snapshots saved for %s", name).WithMeta("name", name)
	}
	return levels[len(levels)-1], nil
}
