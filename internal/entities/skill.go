// Package entities holds the character progression model: skills, the
// attributes that group them, and the character aggregate with its leveling
// rules.
package entities

import "github.com/KirkDiggler/level-manager/internal/errors"

const (
	// DefaultSkillValue is the value every skill starts at
	DefaultSkillValue = 5

	// MaxSkillValue is the highest score a skill can reach
	MaxSkillValue = 100
)

// Skill is one trainable skill. LevelUps holds the practice accumulated since
// the last level-up; it is committed into Value by Character.LevelUp.
type Skill struct {
	Name     string
	IsMajor  bool
	Value    int
	LevelUps int

	// attribute is the name of the owning attribute, set once by Attribute.AddSkill
	attribute string
}

// NewSkill creates a detached skill with no pending practice
func NewSkill(name string, isMajor bool, value int) *Skill {
	return &Skill{
		Name:    name,
		IsMajor: isMajor,
		Value:   value,
	}
}

// GetName returns the skill name
func (s *Skill) GetName() string {
	return s.Name
}

// Attribute returns the name of the owning attribute, or "" while detached
func (s *Skill) Attribute() string {
	return s.attribute
}

// Increase adds amount to the pending practice. Negative amounts undo practice.
func (s *Skill) Increase(amount int) {
	s.LevelUps += amount
}

// ProjectedValue is the value the skill will have after the next level-up
func (s *Skill) ProjectedValue() int {
	return s.Value + s.LevelUps
}

func (s *Skill) attach(attribute string) error {
	if s.attribute != "" {
		return errors.IllegalStatef("skill %s already belongs to %s", s.Name, s.attribute)
	}
	if attribute == "" {
		return errors.InvalidArgumentf("skill %s cannot be attached to an unnamed attribute", s.Name)
	}
	s.attribute = attribute
	return nil
}

// Practice sums the pending practice of skills
func Practice(skills []*Skill) int {
	total := 0
	for _, s := range skills {
		total += s.LevelUps
	}
	return total
}

// MajorPractice sums the pending practice of the major skills
func MajorPractice(skills []*Skill) int {
	total := 0
	for _, s := range skills {
		if s.IsMajor {
			total += s.LevelUps
		}
	}
	return total
}

// MinorPractice sums the pending practice of the minor skills
func MinorPractice(skills []*Skill) int {
	total := 0
	for _, s := range skills {
		if !s.IsMajor {
			total += s.LevelUps
		}
	}
	return total
}
