package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/level-manager/internal/entities"
)

const (
	// TestCharacterID is the ID given to fixture characters
	TestCharacterID = "char-test-001"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Hero"
)

// FixedTime is the instant fixture clocks report
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCharacter builds a fresh warrior named name
func CreateTestCharacter(t *testing.T, name string) *entities.Character {
	t.Helper()
	c, err := entities.NewCharacter(TestCharacterID, name, entities.DefaultClass)
	require.NoError(t, err)
	return c
}

// CreateReadyCharacter builds a warrior with exactly enough major practice to level up.
// All of it is on Blade.
func CreateReadyCharacter(t *testing.T, name string) *entities.Character {
	t.Helper()
	c := CreateTestCharacter(t, name)
	_, _, err := c.IncreaseSkill("Blade", entities.LevelUpThreshold)
	require.NoError(t, err)
	require.True(t, c.CanLevelUp())
	return c
}

// CreateTestCharacterData returns the persisted form of a fresh warrior at level
func CreateTestCharacterData(t *testing.T, name string, level int) *entities.CharacterData {
	t.Helper()
	c := CreateTestCharacter(t, name)
	c.SetLevelValue(level)
	return c.ToData()
}
