package entities

// DefaultAttributeValue is the value every attribute starts at
const DefaultAttributeValue = 50

// Attribute groups skills and carries its own score. Skill order is
// insertion order and is the display order.
type Attribute struct {
	Name  string
	Value int

	skills []*Skill
}

// NewAttribute creates an attribute owning skills. A skill that already
// belongs to another attribute is rejected with errors.IllegalState.
func NewAttribute(name string, value int, skills ...*Skill) (*Attribute, error) {
	a := &Attribute{
		Name:  name,
		Value: value,
	}
	for _, s := range skills {
		if err := a.AddSkill(s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// GetName returns the attribute name
func (a *Attribute) GetName() string {
	return a.Name
}

// AddSkill appends a detached skill and points its back-reference here
func (a *Attribute) AddSkill(s *Skill) error {
	if err := s.attach(a.Name); err != nil {
		return err
	}
	a.skills = append(a.skills, s)
	return nil
}

// Skills returns the owned skills in display order
func (a *Attribute) Skills() []*Skill {
	out := make([]*Skill, len(a.skills))
	copy(out, a.skills)
	return out
}

// Practice is the pending practice summed over the owned skills
func (a *Attribute) Practice() int {
	return Practice(a.skills)
}

// AttributeGain is the number of points this attribute gains if chosen at
// the next level-up
func (a *Attribute) AttributeGain() int {
	return AttributeGain(a.Practice())
}

// AttributeGain maps accumulated skill practice to the attribute bonus
// awarded at level-up.
func AttributeGain(practice int) int {
	switch {
	case practice >= 10:
		return 5
	case practice >= 8:
		return 4
	case practice >= 5:
		return 3
	case practice >= 1:
		return 2
	default:
		return 1
	}
}
