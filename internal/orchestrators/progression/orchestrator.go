// Package progression implements the character progression orchestrator:
// every command the tool offers maps to one operation here.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/level-manager/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/level-manager/internal/repositories/character"
)

const errCharacterNil = "no character loaded"

func noCharacter() error {
	return errors.WrapWithCode(core.ErrNilEntity, errors.CodeInvalidArgument, errCharacterNil)
}

// entityAttr groups the identity of e for log records
func entityAttr(e core.Entity) slog.Attr {
	return slog.Group("entity",
		"type", e.GetType(),
		"id", e.GetID())
}

// Service defines the interface for progression operations
type Service interface {
	// Lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// Progression
	IncreaseSkill(ctx context.Context, input *IncreaseSkillInput) (*IncreaseSkillOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	SetPlan(ctx context.Context, input *SetPlanInput) (*SetPlanOutput, error)
	ClearPlan(ctx context.Context, input *ClearPlanInput) (*ClearPlanOutput, error)

	// Direct edits
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
	SetAttributeValue(ctx context.Context, input *SetAttributeValueInput) (*SetAttributeValueOutput, error)
	SetSkillValue(ctx context.Context, input *SetSkillValueInput) (*SetSkillValueOutput, error)
	SetSkillMode(ctx context.Context, input *SetSkillModeInput) (*SetSkillModeOutput, error)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	idGen         idgen.Generator
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// CreateCharacter builds a level 1 character and stores its first snapshot
func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class := input.Class
	if class == "" {
		class = entities.DefaultClass
	}

	char, err := entities.NewCharacter(o.idGen.Generate(), input.Name, class)
	if err != nil {
		return nil, errors.Wrap(err, "could not create character")
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{CharacterData: char.ToData()})
	if err != nil {
		return nil, errors.Wrapf(core.NewEntityError("create", char.GetType(), char.GetID(), err),
			"could not create %s", input.Name)
	}

	slog.Info("character created",
		entityAttr(char),
		"name", char.Name,
		"class", char.Class,
		"key", out.Key)

	return &CreateCharacterOutput{Character: char, Key: out.Key}, nil
}

// LoadCharacter restores a character from a snapshot
func (o *orchestrator) LoadCharacter(
	ctx context.Context,
	input *LoadCharacterInput,
) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.Load(ctx, characterrepo.LoadInput{
		Name:  input.Name,
		Level: input.Level,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", input.Name)
	}

	char, err := entities.LoadCharacterFromData(out.CharacterData)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", input.Name)
	}

	slog.Debug("character loaded",
		entityAttr(char),
		"name", char.Name,
		"level", char.Level)

	return &LoadCharacterOutput{Character: char}, nil
}

// ListLevels lists the saved levels of a character
func (o *orchestrator) ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.ListLevels(ctx, characterrepo.ListLevelsInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "could not list levels of %s", input.Name)
	}

	return &ListLevelsOutput{Levels: out.Levels}, nil
}

// SaveCharacter snapshots the character at its current level
func (o *orchestrator) SaveCharacter(
	ctx context.Context,
	input *SaveCharacterInput,
) (*SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	char := input.Character
	out, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{CharacterData: char.ToData()})
	if err != nil {
		return nil, errors.Wrap(core.NewEntityError("save", char.GetType(), char.GetID(), err), "could not save character")
	}

	slog.Info("character saved",
		entityAttr(char),
		"name", char.Name,
		"level", char.Level,
		"key", out.Key)

	return &SaveCharacterOutput{Key: out.Key, SavedAt: out.SavedAt}, nil
}

// IncreaseSkill adds practice to one skill
func (o *orchestrator) IncreaseSkill(
	_ context.Context,
	input *IncreaseSkillInput,
) (*IncreaseSkillOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	char := input.Character
	skill, attribute, err := char.IncreaseSkill(input.Skill, input.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "could not increase skill")
	}

	var levelUps int
	for _, s := range char.Skills() {
		if s.Name == skill {
			levelUps = s.LevelUps
			break
		}
	}

	slog.Info("skill increased",
		entityAttr(char),
		"name", char.Name,
		"skill", skill,
		"attribute", attribute,
		"amount", input.Amount,
		"level_ups", levelUps)

	return &IncreaseSkillOutput{
		Skill:      skill,
		Attribute:  attribute,
		LevelUps:   levelUps,
		CanLevelUp: char.CanLevelUp(),
	}, nil
}

// LevelUp raises the character one level
func (o *orchestrator) LevelUp(_ context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	char := input.Character
	gains, err := char.LevelUp(input.Attributes)
	if err != nil {
		return nil, errors.Wrap(err, "could not level up")
	}

	slog.Info("character leveled up",
		entityAttr(char),
		"name", char.Name,
		"level", char.Level,
		"gains", gains)

	return &LevelUpOutput{Level: char.Level, Gains: gains}, nil
}

// SetPlan replaces the attribute plan
func (o *orchestrator) SetPlan(_ context.Context, input *SetPlanInput) (*SetPlanOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	names, err := input.Character.SetPlan(input.Attributes)
	if err != nil {
		return nil, errors.Wrap(err, "could not set plan")
	}

	slog.Info("plan set",
		entityAttr(input.Character),
		"name", input.Character.Name,
		"attributes", names)

	return &SetPlanOutput{Attributes: names}, nil
}

// ClearPlan empties the attribute plan
func (o *orchestrator) ClearPlan(_ context.Context, input *ClearPlanInput) (*ClearPlanOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	input.Character.ClearPlan()
	slog.Info("plan cleared", entityAttr(input.Character), "name", input.Character.Name)

	return &ClearPlanOutput{}, nil
}

// SetLevel overwrites the level. Snapshots are keyed by level, so it must stay positive.
func (o *orchestrator) SetLevel(_ context.Context, input *SetLevelInput) (*SetLevelOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("level must be at least 1, got %d", input.Level)
	}

	level := input.Character.SetLevelValue(input.Level)
	slog.Info("level set",
		entityAttr(input.Character),
		"name", input.Character.Name,
		"level", level)

	return &SetLevelOutput{Level: level}, nil
}

// SetAttributeValue overwrites an attribute value
func (o *orchestrator) SetAttributeValue(
	_ context.Context,
	input *SetAttributeValueInput,
) (*SetAttributeValueOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	name, value, err := input.Character.SetAttributeValue(input.Attribute, input.Value)
	if err != nil {
		return nil, errors.Wrap(err, "could not set attribute")
	}

	slog.Info("attribute set",
		entityAttr(input.Character),
		"name", input.Character.Name,
		"attribute", name,
		"value", value)

	return &SetAttributeValueOutput{Attribute: name, Value: value}, nil
}

// SetSkillValue overwrites a skill value
func (o *orchestrator) SetSkillValue(
	_ context.Context,
	input *SetSkillValueInput,
) (*SetSkillValueOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	name, value, err := input.Character.SetSkillValue(input.Skill, input.Value)
	if err != nil {
		return nil, errors.Wrap(err, "could not set skill")
	}

	slog.Info("skill set",
		entityAttr(input.Character),
		"name", input.Character.Name,
		"skill", name,
		"value", value)

	return &SetSkillValueOutput{Skill: name, Value: value}, nil
}

// SetSkillMode marks a skill major or minor
func (o *orchestrator) SetSkillMode(
	_ context.Context,
	input *SetSkillModeInput,
) (*SetSkillModeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, noCharacter()
	}

	name, major, err := input.Character.SetSkillMode(input.Skill, input.Major)
	if err != nil {
		return nil, errors.Wrap(err, "could not set skill")
	}

	slog.Info("skill mode set",
		entityAttr(input.Character),
		"name", input.Character.Name,
		"skill", name,
		"major", major)

	return &SetSkillModeOutput{Skill: name, Major: major}, nil
}
