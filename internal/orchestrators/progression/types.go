package progression

import (
	"time"

	"github.com/KirkDiggler/level-manager/internal/entities"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name  string
	Class string // defaults to entities.DefaultClass
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
	Key       string
}

// LoadCharacterInput defines the request for loading a character
type LoadCharacterInput struct {
	Name  string
	Level int // 0 loads the highest saved level
}

// LoadCharacterOutput defines the response for loading a character
type LoadCharacterOutput struct {
	Character *entities.Character
}

// ListLevelsInput defines the request for listing saved levels
type ListLevelsInput struct {
	Name string
}

// ListLevelsOutput defines the response for listing saved levels
type ListLevelsOutput struct {
	Levels []int
}

// SaveCharacterInput defines the request for saving a character
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the response for saving a character
type SaveCharacterOutput struct {
	Key     string
	SavedAt time.Time
}

// IncreaseSkillInput defines the request for practicing a skill
type IncreaseSkillInput struct {
	Character *entities.Character
	Skill     string
	Amount    int
}

// IncreaseSkillOutput defines the response for practicing a skill
type IncreaseSkillOutput struct {
	Skill      string
	Attribute  string
	LevelUps   int
	CanLevelUp bool
}

// LevelUpInput defines the request for leveling up
type LevelUpInput struct {
	Character  *entities.Character
	Attributes []string
}

// LevelUpOutput defines the response for leveling up
type LevelUpOutput struct {
	Level int
	Gains []entities.Gain
}

// SetPlanInput defines the request for planning attributes
type SetPlanInput struct {
	Character  *entities.Character
	Attributes []string
}

// SetPlanOutput defines the response for planning attributes
type SetPlanOutput struct {
	Attributes []string
}

// ClearPlanInput defines the request for clearing the plan
type ClearPlanInput struct {
	Character *entities.Character
}

// ClearPlanOutput defines the response for clearing the plan
type ClearPlanOutput struct{}

// SetLevelInput defines the request for overwriting the level
type SetLevelInput struct {
	Character *entities.Character
	Level     int
}

// SetLevelOutput defines the response for overwriting the level
type SetLevelOutput struct {
	Level int
}

// SetAttributeValueInput defines the request for overwriting an attribute value
type SetAttributeValueInput struct {
	Character *entities.Character
	Attribute string
	Value     int
}

// SetAttributeValueOutput defines the response for overwriting an attribute value
type SetAttributeValueOutput struct {
	Attribute string
	Value     int
}

// SetSkillValueInput defines the request for overwriting a skill value
type SetSkillValueInput struct {
	Character *entities.Character
	Skill     string
	Value     int
}

// SetSkillValueOutput defines the response for overwriting a skill value
type SetSkillValueOutput struct {
	Skill string
	Value int
}

// SetSkillModeInput defines the request for marking a skill major or minor
type SetSkillModeInput struct {
	Character *entities.Character
	Skill     string
	Major     bool
}

// SetSkillModeOutput defines the response for marking a skill major or minor
type SetSkillModeOutput struct {
	Skill string
	Major bool
}
