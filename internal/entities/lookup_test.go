package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
)

func skills(names ...string) []*entities.Skill {
	out := make([]*entities.Skill, len(names))
	for i, n := range names {
		out[i] = entities.NewSkill(n, false, entities.DefaultSkillValue)
	}
	return out
}

func TestMatchesName(t *testing.T) {
	testCases := []struct {
		name     string
		entity   string
		query    string
		expected bool
	}{
		{"exact", "Alchemy", "Alchemy", true},
		{"prefix", "Alchemy", "alc", true},
		{"case insensitive", "Hand to Hand", "HAND", true},
		{"not a prefix", "Alchemy", "chem", false},
		{"query too short", "Alchemy", "al", false},
		{"query longer than name", "Luck", "Lucky", false},
		{"entity name too short", "Ax", "Axe", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entities.MatchesName(tc.entity, tc.query))
		})
	}
}

func TestFindUniqueByName(t *testing.T) {
	list := skills("Alchemy", "Alteration", "Altmer Lore", "Athletics")

	t.Run("unique prefix", func(t *testing.T) {
		idx, err := entities.FindUniqueByName(list, "alc", "skill")
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("full name", func(t *testing.T) {
		idx, err := entities.FindUniqueByName(list, "ATHLETICS", "skill")
		require.NoError(t, err)
		assert.Equal(t, 3, idx)
	})

	t.Run("ambiguous lists every match", func(t *testing.T) {
		_, err := entities.FindUniqueByName(list, "alt", "skill")
		require.Error(t, err)
		assert.True(t, errors.IsAmbiguousMatch(err))
		assert.Equal(t, []string{"Alteration", "Altmer Lore"}, errors.GetMatches(err))
		assert.Contains(t, err.Error(), "Alteration, Altmer Lore")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := entities.FindUniqueByName(list, "xyz", "skill")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("two character query is rejected", func(t *testing.T) {
		for _, q := range []string{"al", "xy", ""} {
			_, err := entities.FindUniqueByName(list, q, "skill")
			require.Error(t, err, q)
			assert.True(t, errors.IsInvalidArgument(err), q)
		}
	})

	t.Run("attributes resolve the same way", func(t *testing.T) {
		c, err := entities.NewCharacter("id", "Hero", entities.ClassWarrior)
		require.NoError(t, err)

		idx, err := entities.FindUniqueByName(c.Attributes(), "int", "attribute")
		require.NoError(t, err)
		assert.Equal(t, "Intelligence", c.Attributes()[idx].Name)
	})
}
