package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

// CharacterData is the persisted form of a Character. It is acyclic: skill
// back-references are implied by nesting and rebuilt on load, and the plan
// is stored as attribute names.
type CharacterData struct {
	ID                string          `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	Level             int             `json:"level" yaml:"level"`
	Class             string          `json:"class,omitempty" yaml:"class,omitempty"`
	SavedAt           time.Time       `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
	Attributes        []AttributeData `json:"attributes" yaml:"attributes"`
	PlannedAttributes []string        `json:"planned_attributes,omitempty" yaml:"planned_attributes,omitempty"`
}

// AttributeData is the persisted form of an Attribute
type AttributeData struct {
	Name   string      `json:"name" yaml:"name"`
	Value  int         `json:"value" yaml:"value"`
	Skills []SkillData `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// SkillData is the persisted form of a Skill
type SkillData struct {
	Name     string `json:"name" yaml:"name"`
	IsMajor  bool   `json:"is_major" yaml:"is_major"`
	Value    int    `json:"value" yaml:"value"`
	LevelUps int    `json:"level_ups" yaml:"level_ups"`
}

// SnapshotKey names the snapshot this data belongs to
func (d *CharacterData) SnapshotKey() string {
	return SnapshotKey(d.Name, d.Level)
}

// ToData copies the character into its persisted form
func (c *Character) ToData() *CharacterData {
	data := &CharacterData{
		ID:         c.ID,
		Name:       c.Name,
		Level:      c.Level,
		Class:      c.Class,
		Attributes: make([]AttributeData, len(c.attributes)),
	}
	for i, attr := range c.attributes {
		ad := AttributeData{
			Name:  attr.Name,
			Value: attr.Value,
		}
		for _, s := range attr.skills {
			ad.Skills = append(ad.Skills, SkillData{
				Name:     s.Name,
				IsMajor:  s.IsMajor,
				Value:    s.Value,
				LevelUps: s.LevelUps,
			})
		}
		data.Attributes[i] = ad
	}
	for _, idx := range c.plan {
		data.PlannedAttributes = append(data.PlannedAttributes, c.attributes[idx].Name)
	}
	return data
}

// LoadCharacterFromData restores a Character from its persisted form.
// Failures are *core.EntityError values naming the snapshot's character;
// the code of the underlying error is kept.
//
// Returns errors.InvalidArgument for a snapshot that would break the model:
// missing name, level below 1, duplicate names, or a plan that does not name
// 2 or 3 distinct attributes of this character.
func LoadCharacterFromData(data *CharacterData) (*Character, error) {
	if data == nil {
		return nil, errors.WrapWithCode(core.ErrNilEntity, errors.CodeInvalidArgument, "character data cannot be nil")
	}

	c, err := restore(data)
	if err != nil {
		return nil, core.NewEntityError("load", EntityType, data.ID, err)
	}
	return c, nil
}

func restore(data *CharacterData) (*Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", data.Name, vb)
	if data.Level < 1 {
		vb.Fieldf("level", "must be at least 1, got %d", data.Level)
	}
	if len(data.Attributes) == 0 {
		vb.RequiredField("attributes")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid snapshot %s", data.SnapshotKey())
	}

	attrNames := make(map[string]int, len(data.Attributes))
	skillNames := make(map[string]bool)
	attributes := make([]*Attribute, 0, len(data.Attributes))
	for i, ad := range data.Attributes {
		if _, dup := attrNames[ad.Name]; dup {
			return nil, errors.InvalidArgumentf("duplicate attribute %q in snapshot %s", ad.Name, data.SnapshotKey())
		}
		attrNames[ad.Name] = i

		skills := make([]*Skill, 0, len(ad.Skills))
		for _, sd := range ad.Skills {
			if skillNames[sd.Name] {
				return nil, errors.InvalidArgumentf("duplicate skill %q in snapshot %s", sd.Name, data.SnapshotKey())
			}
			skillNames[sd.Name] = true

			s := NewSkill(sd.Name, sd.IsMajor, sd.Value)
			s.LevelUps = sd.LevelUps
			skills = append(skills, s)
		}
		attr, err := NewAttribute(ad.Name, ad.Value, skills...)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid snapshot %s", data.SnapshotKey())
		}
		attributes = append(attributes, attr)
	}

	c, err := assemble(data.ID, data.Name, data.Class, data.Level, attributes)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid snapshot %s", data.SnapshotKey())
	}

	if len(data.PlannedAttributes) == 0 {
		return c, nil
	}
	if len(data.PlannedAttributes) < MinPlanAttributes || len(data.PlannedAttributes) > MaxPlanAttributes {
		return nil, errors.InvalidArgumentf("snapshot %s plans %d attributes", data.SnapshotKey(), len(data.PlannedAttributes))
	}
	seen := make(map[int]bool, len(data.PlannedAttributes))
	for _, name := range data.PlannedAttributes {
		idx, ok := attrNames[name]
		if !ok {
			return nil, errors.InvalidArgumentf("snapshot %s plans unknown attribute %q", data.SnapshotKey(), name)
		}
		if seen[idx] {
			return nil, errors.InvalidArgumentf("snapshot %s plans %q twice", data.SnapshotKey(), name)
		}
		seen[idx] = true
		c.plan = append(c.plan, idx)
	}
	return c, nil
}
