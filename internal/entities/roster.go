package entities

import (
	"sort"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

// AttributeTemplate describes one attribute of a fresh character
type AttributeTemplate struct {
	Name   string
	Skills []string
}

// Roster is the fixed attribute and skill layout every character is built from
var Roster = []AttributeTemplate{
	{Name: "Strength", Skills: []string{"Blade", "Blunt", "Hand to Hand"}},
	{Name: "Endurance", Skills: []string{"Armorer", "Block", "Heavy Armor"}},
	{Name: "Speed", Skills: []string{"Athletics", "Acrobatics", "Light Armor"}},
	{Name: "Agility", Skills: []string{"Security", "Sneak", "Marksman"}},
	{Name: "Personality", Skills: []string{"Mercantile", "Speechcraft", "Illusion"}},
	{Name: "Intelligence", Skills: []string{"Alchemy", "Conjuration", "Mysticism"}},
	{Name: "Willpower", Skills: []string{"Alteration", "Destruction", "Restoration"}},
	{Name: "Luck"},
}

// Character classes. A class only decides which skills start as major.
const (
	ClassWarrior = "warrior"
	ClassMage    = "mage"
	ClassThief   = "thief"
	ClassCustom  = "custom"

	DefaultClass = ClassWarrior
)

var classMajors = map[string][]string{
	ClassWarrior: {"Armorer", "Athletics", "Blade", "Block", "Blunt", "Hand to Hand", "Heavy Armor"},
	ClassMage:    {"Alchemy", "Alteration", "Conjuration", "Destruction", "Illusion", "Mysticism", "Restoration"},
	ClassThief:   {"Acrobatics", "Light Armor", "Marksman", "Mercantile", "Security", "Sneak", "Speechcraft"},
	ClassCustom:  nil,
}

// Classes lists the known class names in alphabetical order
func Classes() []string {
	out := make([]string, 0, len(classMajors))
	for name := range classMajors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MajorSkills returns the skills a class starts with as major
func MajorSkills(class string) ([]string, error) {
	majors, ok := classMajors[class]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown class %q", class).
			WithMeta("classes", Classes())
	}
	out := make([]string, len(majors))
	copy(out, majors)
	return out, nil
}
