package views_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/testutils"
	"github.com/KirkDiggler/level-manager/internal/views"
)

func TestRemainingTone(t *testing.T) {
	testCases := []struct {
		remaining int
		want      views.Tone
	}{
		{remaining: 10, want: views.ToneNormal},
		{remaining: 2, want: views.ToneNormal},
		{remaining: 1, want: views.ToneWarn},
		{remaining: 0, want: views.ToneFail},
		{remaining: -3, want: views.ToneFail},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, views.RemainingTone(tc.remaining), "remaining %d", tc.remaining)
	}
}

type ViewsTestSuite struct {
	suite.Suite
	char *entities.Character
}

func (s *ViewsTestSuite) SetupTest() {
	s.char = testutils.CreateTestCharacter(s.T(), "Hero")
}

func (s *ViewsTestSuite) TestSummary() {
	out := views.Summary(s.char)
	s.Contains(out, "Hero")
	s.Contains(out, "warrior")
	s.Contains(out, "Ready to level")
	s.Contains(out, "no")

	_, _, err := s.char.IncreaseSkill("Blade", 10)
	s.Require().NoError(err)
	s.Contains(views.Summary(s.char), "yes")
}

func (s *ViewsTestSuite) TestAttributes() {
	_, _, err := s.char.IncreaseSkill("Blade", 10)
	s.Require().NoError(err)

	out := views.Attributes(s.char)
	for _, tmpl := range entities.Roster {
		s.Contains(out, tmpl.Name)
	}
	s.Contains(out, "+5")
}

func (s *ViewsTestSuite) TestSkills() {
	_, _, err := s.char.IncreaseSkill("Sneak", 3)
	s.Require().NoError(err)

	out := views.Skills(s.char)
	s.Contains(out, "Hand to Hand")
	s.Contains(out, "+3")
	s.Contains(out, "8")

	strength := strings.Index(out, "Blade")
	willpower := strings.Index(out, "Restoration")
	s.Less(strength, willpower, "skills follow roster order")
}

func (s *ViewsTestSuite) TestPlan() {
	s.Contains(views.Plan(s.char), "no attributes planned")

	_, err := s.char.SetPlan([]string{"Strength", "Endurance"})
	s.Require().NoError(err)
	_, _, err = s.char.IncreaseSkill("Blade", 8)
	s.Require().NoError(err)

	out := views.Plan(s.char)
	s.Contains(out, "Heavy Armor")
	s.NotContains(out, "Sneak")
	s.Contains(out, "Major increases left: 2")
	for _, col := range []string{"Increases", "Value", "Pending", "Next level", "Remaining"} {
		s.Contains(out, col)
	}

	var blade string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Blade") {
			blade = line
		}
	}
	s.Require().NotEmpty(blade)
	s.Contains(blade, "Strength")
	s.Contains(blade, " 8 ")
	s.Contains(blade, "+8")
	s.Contains(blade, "13")
}

func (s *ViewsTestSuite) TestRenderSections() {
	s.Equal(views.Plan(s.char), views.Render(s.char, views.SectionPlan))
	s.Equal(views.All(s.char), views.Render(s.char, views.SectionAll))
	s.Equal(views.All(s.char), views.Render(s.char, "bogus"))
}

func TestViewsSuite(t *testing.T) {
	suite.Run(t, new(ViewsTestSuite))
}

func TestHelp(t *testing.T) {
	out := views.Help([]views.HelpRow{
		{Verb: "increase-skill", Aliases: []string{"increase", "inc"}, Usage: "<skill> [amount]", Summary: "practice a skill"},
	})
	require.Contains(t, out, "increase-skill")
	require.Contains(t, out, "increase, inc")
	require.Contains(t, out, "practice a skill")
}
