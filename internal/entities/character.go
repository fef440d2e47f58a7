package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

const (
	// LevelUpThreshold is the major practice needed before a level-up, and
	// the practice an attribute can absorb before its gain stops growing.
	LevelUpThreshold = 10

	// LevelUpAttributes is how many distinct attributes a level-up raises
	LevelUpAttributes = 3

	// MinPlanAttributes and MaxPlanAttributes bound the size of a plan
	MinPlanAttributes = 2
	MaxPlanAttributes = 3

	// EntityType is reported through core.Entity
	EntityType = "character"
)

// Compile-time check that Character can be handed to rpg-toolkit
var _ core.Entity = (*Character)(nil)

// Character is the root aggregate. Attributes own the skills; skills is a
// flattened index over them in attribute order. plan holds indices into
// attributes.
type Character struct {
	ID    string
	Name  string
	Level int
	Class string

	attributes []*Attribute
	skills     []*Skill
	plan       []int
}

// Gain is one attribute raise applied by LevelUp
type Gain struct {
	Attribute string
	Amount    int
}

// NewCharacter builds a level 1 character from the Roster with the majors
// of class.
func NewCharacter(id, name, class string) (*Character, error) {
	if name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}
	majors, err := MajorSkills(class)
	if err != nil {
		return nil, err
	}
	isMajor := make(map[string]bool, len(majors))
	for _, m := range majors {
		isMajor[m] = true
	}

	attributes := make([]*Attribute, 0, len(Roster))
	for _, tmpl := range Roster {
		skills := make([]*Skill, 0, len(tmpl.Skills))
		for _, skillName := range tmpl.Skills {
			skills = append(skills, NewSkill(skillName, isMajor[skillName], DefaultSkillValue))
		}
		attr, err := NewAttribute(tmpl.Name, DefaultAttributeValue, skills...)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, attr)
	}

	return assemble(id, name, class, 1, attributes)
}

// assemble indexes the skills of attributes and checks every back-reference
func assemble(id, name, class string, level int, attributes []*Attribute) (*Character, error) {
	c := &Character{
		ID:         id,
		Name:       name,
		Level:      level,
		Class:      class,
		attributes: attributes,
	}
	for _, attr := range attributes {
		for _, s := range attr.skills {
			if s.attribute != attr.Name {
				return nil, errors.IllegalStatef("skill %s is not attached to %s", s.Name, attr.Name)
			}
			c.skills = append(c.skills, s)
		}
	}
	return c, nil
}

// GetID returns the character ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityType
}

// GetName returns the character name
func (c *Character) GetName() string {
	return c.Name
}

// SnapshotKey names the snapshot of this character at its current level
func (c *Character) SnapshotKey() string {
	return SnapshotKey(c.Name, c.Level)
}

// SnapshotKey formats the key of the snapshot of name at level
func SnapshotKey(name string, level int) string {
	return fmt.Sprintf("%s_lvl%02d", name, level)
}

// Attributes returns the attributes in roster order
func (c *Character) Attributes() []*Attribute {
	out := make([]*Attribute, len(c.attributes))
	copy(out, c.attributes)
	return out
}

// Skills returns every skill in attribute order
func (c *Character) Skills() []*Skill {
	out := make([]*Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// AttributeOf returns the attribute owning skill, or nil for a foreign skill
func (c *Character) AttributeOf(s *Skill) *Attribute {
	for _, attr := range c.attributes {
		if attr.Name == s.attribute {
			return attr
		}
	}
	return nil
}

// PlannedAttributes returns the attributes of the current plan in plan order
func (c *Character) PlannedAttributes() []*Attribute {
	out := make([]*Attribute, len(c.plan))
	for i, idx := range c.plan {
		out[i] = c.attributes[idx]
	}
	return out
}

// IsPlanned reports whether attr is part of the current plan
func (c *Character) IsPlanned(attr *Attribute) bool {
	for _, idx := range c.plan {
		if c.attributes[idx] == attr {
			return true
		}
	}
	return false
}

// MajorPractice is the pending practice over all major skills
func (c *Character) MajorPractice() int {
	return MajorPractice(c.skills)
}

// MinorPractice is the pending practice over all minor skills
func (c *Character) MinorPractice() int {
	return MinorPractice(c.skills)
}

// TotalPractice is the pending practice over all skills
func (c *Character) TotalPractice() int {
	return Practice(c.skills)
}

// RemainingMajorIncrease is the major practice still missing for a level-up.
// It goes negative once the threshold is exceeded.
func (c *Character) RemainingMajorIncrease() int {
	return LevelUpThreshold - c.MajorPractice()
}

// CanLevelUp reports whether enough major practice has accumulated. Skills
// already at MaxSkillValue do not count.
func (c *Character) CanLevelUp() bool {
	total := 0
	for _, s := range c.skills {
		if s.IsMajor && s.Value < MaxSkillValue {
			total += s.LevelUps
		}
	}
	return total >= LevelUpThreshold
}

// IncreaseSkill adds amount to the pending practice of the skill matching
// name and returns the skill and attribute names.
func (c *Character) IncreaseSkill(name string, amount int) (string, string, error) {
	idx, err := FindUniqueByName(c.skills, name, "skill")
	if err != nil {
		return "", "", err
	}
	s := c.skills[idx]
	s.Increase(amount)
	return s.Name, s.attribute, nil
}

// LevelUp raises the character one level. The three attributes named gain
// their AttributeGain, then every skill commits its pending practice.
//
// Returns errors.InvalidArgument unless exactly three distinct attributes resolve.
// Returns errors.NotFound or errors.AmbiguousMatch for a name that does not resolve.
// Returns errors.IllegalState if CanLevelUp is false.
// Nothing is modified when an error is returned.
func (c *Character) LevelUp(attributeNames []string) ([]Gain, error) {
	if len(attributeNames) != LevelUpAttributes {
		return nil, errors.InvalidArgumentf("level-up takes exactly %d attributes, got %d",
			LevelUpAttributes, len(attributeNames))
	}

	idx, err := c.resolveDistinctAttributes(attributeNames)
	if err != nil {
		return nil, err
	}
	if len(idx) != LevelUpAttributes {
		return nil, errors.InvalidArgumentf("level-up needs %d distinct attributes, got %d",
			LevelUpAttributes, len(idx))
	}

	if !c.CanLevelUp() {
		return nil, errors.IllegalStatef("cannot level up yet: %d of %d major skill increases",
			c.MajorPractice(), LevelUpThreshold)
	}

	gains := make([]Gain, len(idx))
	for i, j := range idx {
		attr := c.attributes[j]
		gains[i] = Gain{Attribute: attr.Name, Amount: attr.AttributeGain()}
	}

	c.Level++
	for i, j := range idx {
		c.attributes[j].Value += gains[i].Amount
	}
	for _, s := range c.skills {
		s.Value += s.LevelUps
		s.LevelUps = 0
	}

	return gains, nil
}

// SetPlan replaces the plan with the 2 or 3 attributes named and returns
// their resolved names.
//
// Returns errors.InvalidArgument unless 2 or 3 distinct attributes resolve.
func (c *Character) SetPlan(attributeNames []string) ([]string, error) {
	idx, err := c.resolveDistinctAttributes(attributeNames)
	if err != nil {
		return nil, err
	}
	if len(idx) < MinPlanAttributes || len(idx) > MaxPlanAttributes {
		return nil, errors.InvalidArgumentf("a plan needs %d or %d distinct attributes, got %d",
			MinPlanAttributes, MaxPlanAttributes, len(idx))
	}

	c.plan = idx
	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = c.attributes[j].Name
	}
	return names, nil
}

// ClearPlan empties the plan
func (c *Character) ClearPlan() {
	c.plan = nil
}

// RemainingSkillIncrease is the practice skill can still usefully absorb
// before the next level-up: 0 outside the plan, otherwise the smallest of
// the major budget (major skills only), the attribute budget and the value
// cap. A negative result means the skill is over-practiced.
func (c *Character) RemainingSkillIncrease(s *Skill) int {
	attr := c.AttributeOf(s)
	if attr == nil || !c.IsPlanned(attr) {
		return 0
	}

	remaining := LevelUpThreshold - attr.Practice()
	if s.IsMajor {
		remaining = min(remaining, c.RemainingMajorIncrease())
	}
	return min(remaining, MaxSkillValue-s.Value)
}

// SetLevelValue overwrites the level
func (c *Character) SetLevelValue(level int) int {
	c.Level = level
	return c.Level
}

// SetAttributeValue overwrites the value of the attribute matching name
func (c *Character) SetAttributeValue(name string, value int) (string, int, error) {
	idx, err := FindUniqueByName(c.attributes, name, "attribute")
	if err != nil {
		return "", 0, err
	}
	attr := c.attributes[idx]
	attr.Value = value
	return attr.Name, attr.Value, nil
}

// SetSkillValue overwrites the value of the skill matching name
func (c *Character) SetSkillValue(name string, value int) (string, int, error) {
	idx, err := FindUniqueByName(c.skills, name, "skill")
	if err != nil {
		return "", 0, err
	}
	s := c.skills[idx]
	s.Value = value
	return s.Name, s.Value, nil
}

// SetSkillMode marks the skill matching name as major or minor
func (c *Character) SetSkillMode(name string, isMajor bool) (string, bool, error) {
	idx, err := FindUniqueByName(c.skills, name, "skill")
	if err != nil {
		return "", false, err
	}
	s := c.skills[idx]
	s.IsMajor = isMajor
	return s.Name, s.IsMajor, nil
}

// resolveDistinctAttributes resolves every name and drops repeats, keeping
// first-seen order.
func (c *Character) resolveDistinctAttributes(names []string) ([]int, error) {
	seen := make(map[int]bool, len(names))
	var idx []int
	for _, name := range names {
		i, err := FindUniqueByName(c.attributes, name, "attribute")
		if err != nil {
			return nil, err
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	return idx, nil
}
