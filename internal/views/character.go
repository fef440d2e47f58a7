package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/level-manager/internal/entities"
)

// Sections accepted by Render
const (
	SectionAll        = "all"
	SectionCharacter  = "character"
	SectionAttributes = "attributes"
	SectionSkills     = "skills"
	SectionPlan       = "plan"
)

// Sections lists every section in print order, "all" first
func Sections() []string {
	return []string{SectionAll, SectionCharacter, SectionAttributes, SectionSkills, SectionPlan}
}

// Tone classifies a remaining skill increase
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarn
	ToneFail
)

// RemainingTone is normal above 1, a warning at exactly 1, and a failure
// once nothing is left to gain.
func RemainingTone(remaining int) Tone {
	switch {
	case remaining > 1:
		return ToneNormal
	case remaining == 1:
		return ToneWarn
	default:
		return ToneFail
	}
}

func toneStyle(t Tone) lipgloss.Style {
	switch t {
	case ToneWarn:
		return warnStyle
	case ToneFail:
		return badStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Render renders one section of c; an unknown section renders everything
func Render(c *entities.Character, section string) string {
	switch section {
	case SectionCharacter:
		return Summary(c)
	case SectionAttributes:
		return Attributes(c)
	case SectionSkills:
		return Skills(c)
	case SectionPlan:
		return Plan(c)
	default:
		return All(c)
	}
}

// All renders every section
func All(c *entities.Character) string {
	return strings.Join([]string{Summary(c), Attributes(c), Skills(c), Plan(c)}, "\n\n")
}

// Summary renders level and practice totals
func Summary(c *entities.Character) string {
	ready := mutedStyle.Render("no")
	if c.CanLevelUp() {
		ready = Good.Render("yes")
	}

	rows := [][]string{
		{"Class", c.Class},
		{"Level", strconv.Itoa(c.Level)},
		{"Major increases", strconv.Itoa(c.MajorPractice())},
		{"Minor increases", strconv.Itoa(c.MinorPractice())},
		{"Total increases", strconv.Itoa(c.TotalPractice())},
		{"Ready to level", ready},
	}
	return Heading(c.Name) + "\n" + newTable([]string{"", ""}, rows, nil).String()
}

// Attributes renders every attribute with the gain it would get at the next level-up
func Attributes(c *entities.Character) string {
	attrs := c.Attributes()
	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		planned := ""
		if c.IsPlanned(a) {
			planned = "*"
		}
		rows = append(rows, []string{
			a.Name,
			strconv.Itoa(a.Value),
			"+" + strconv.Itoa(a.AttributeGain()),
			strconv.Itoa(a.Practice()),
			planned,
		})
	}
	return Heading("Attributes") + "\n" +
		newTable([]string{"Attribute", "Value", "Gain", "Increases", "Plan"}, rows, nil).String()
}

// Skills renders skills grouped by attribute. Major skills are bold.
func Skills(c *entities.Character) string {
	var (
		rows  [][]string
		major []bool
	)
	for _, a := range c.Attributes() {
		for _, s := range a.Skills() {
			rows = append(rows, []string{
				a.Name,
				s.Name,
				strconv.Itoa(s.Value),
				signed(s.LevelUps),
				strconv.Itoa(s.ProjectedValue()),
			})
			major = append(major, s.IsMajor)
		}
	}

	style := func(row, col int) lipgloss.Style {
		if col == 1 && row >= 0 && row < len(major) && major[row] {
			return majorStyle
		}
		return lipgloss.NewStyle()
	}
	return Heading("Skills") + "\n" +
		newTable([]string{"Attribute", "Skill", "Value", "Pending", "Next level"}, rows, style).String()
}

// Plan renders the skills of the planned attributes: each attribute's
// practice, each skill's value, pending and projected value, and how much
// practice the skill can still absorb
func Plan(c *entities.Character) string {
	planned := c.PlannedAttributes()
	if len(planned) == 0 {
		return Heading("Plan") + "\n" + mutedStyle.Render("no attributes planned")
	}

	var (
		rows  [][]string
		tones []Tone
	)
	for _, a := range planned {
		for _, s := range a.Skills() {
			kind := "minor"
			if s.IsMajor {
				kind = "major"
			}
			remaining := c.RemainingSkillIncrease(s)
			rows = append(rows, []string{
				a.Name,
				strconv.Itoa(a.Practice()),
				s.Name,
				kind,
				strconv.Itoa(s.Value),
				signed(s.LevelUps),
				strconv.Itoa(s.ProjectedValue()),
				strconv.Itoa(remaining),
			})
			tones = append(tones, RemainingTone(remaining))
		}
	}

	style := func(row, col int) lipgloss.Style {
		if col == planRemainingCol && row >= 0 && row < len(tones) {
			return toneStyle(tones[row])
		}
		return lipgloss.NewStyle()
	}

	budget := c.RemainingMajorIncrease()
	headers := []string{"Attribute", "Increases", "Skill", "Type", "Value", "Pending", "Next level", "Remaining"}
	return Heading("Plan") + "\n" +
		newTable(headers, rows, style).String() + "\n" +
		LabelValue("Major increases left", toneStyle(RemainingTone(budget)).Render(strconv.Itoa(budget)))
}

// planRemainingCol is the column of the Plan table colored by RemainingTone
const planRemainingCol = 7

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
