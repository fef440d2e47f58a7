package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/level-manager/internal/handlers/repl"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
	"github.com/KirkDiggler/level-manager/internal/pkg/clock"
	"github.com/KirkDiggler/level-manager/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/level-manager/internal/repositories/character"
	"github.com/KirkDiggler/level-manager/internal/testutils"
)

func newService(t *testing.T) progression.Service {
	t.Helper()
	repo, err := characterrepo.NewFile(&characterrepo.FileConfig{
		Dir:    t.TempDir(),
		Format: characterrepo.FormatJSON,
		Clock:  clock.NewFixed(testutils.FixedTime),
	})
	require.NoError(t, err)

	svc, err := progression.NewOrchestrator(&progression.Config{
		CharacterRepo: repo,
		IDGenerator:   idgen.NewSequential("char"),
	})
	require.NoError(t, err)
	return svc
}

func TestRunLevelsUpAndSaves(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateCharacter(ctx, &progression.CreateCharacterInput{Name: "Hero"})
	require.NoError(t, err)

	script := strings.Join([]string{
		"inc blade 9",
		"level-up str end spe",
		"",
		"inc blade",
		"level-up str end spe",
		"save",
		"quit",
		"inc blade 50",
	}, "\n")

	out := &bytes.Buffer{}
	handler, err := repl.NewHandler(&repl.HandlerConfig{
		Service:   svc,
		Character: created.Character,
		In:        strings.NewReader(script),
		Out:       out,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Run(ctx))

	text := out.String()
	assert.Contains(t, text, "Type 'help' for a list of commands.")
	assert.Contains(t, text, "cannot level up yet")
	assert.Contains(t, text, "Hero is now level 2!")
	assert.Contains(t, text, "Saved Hero_lvl02")

	char := handler.Character()
	assert.Equal(t, 2, char.Level)
	blade := char.Skills()[0]
	assert.Equal(t, "Blade", blade.Name)
	assert.Equal(t, 15, blade.Value)
	assert.Equal(t, 0, blade.LevelUps, "input after quit is not read")

	levels, err := svc.ListLevels(ctx, &progression.ListLevelsInput{Name: "Hero"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, levels.Levels)

	loaded, err := svc.LoadCharacter(ctx, &progression.LoadCharacterInput{Name: "Hero"})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Character.Level)
	assert.Equal(t, 55, loaded.Character.Attributes()[0].Value)
	assert.Equal(t, 51, loaded.Character.Attributes()[1].Value)
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	out := &bytes.Buffer{}
	handler, err := repl.NewHandler(&repl.HandlerConfig{
		Service:   newService(t),
		Character: testutils.CreateTestCharacter(t, "Hero"),
		In:        strings.NewReader("inc sneak 2\n"),
		Out:       out,
		Prompt:    "$ ",
	})
	require.NoError(t, err)

	require.NoError(t, handler.Run(context.Background()))
	assert.Contains(t, out.String(), "$ ")
	assert.Contains(t, out.String(), "Skill Sneak [Agility] increased by 2!")
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handler, err := repl.NewHandler(&repl.HandlerConfig{
		Service:   newService(t),
		Character: testutils.CreateTestCharacter(t, "Hero"),
		In:        strings.NewReader("quit\n"),
		Out:       &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, handler.Run(ctx), context.Canceled)
}
