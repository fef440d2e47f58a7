package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/handlers/repl"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
	progressionmock "github.com/KirkDiggler/level-manager/internal/orchestrators/progression/mock"
	"github.com/KirkDiggler/level-manager/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *progressionmock.MockService
	char        *entities.Character
	out         *bytes.Buffer
	handler     *repl.Handler
	ctx         context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = progressionmock.NewMockService(s.ctrl)
	s.char = testutils.CreateTestCharacter(s.T(), "Hero")
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	handler, err := repl.NewHandler(&repl.HandlerConfig{
		Service:   s.mockService,
		Character: s.char,
		In:        strings.NewReader(""),
		Out:       s.out,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) exec(line string) string {
	s.out.Reset()
	s.False(s.handler.Execute(s.ctx, line))
	return s.out.String()
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := repl.NewHandler(&repl.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Service: is required")
	s.Contains(err.Error(), "Character: is required")
}

func (s *HandlerTestSuite) TestAliasesAreUnique() {
	seen := make(map[string]string)
	for _, c := range s.handler.Commands() {
		for _, name := range c.Names() {
			prev, dup := seen[name]
			s.False(dup, "%s is used by %s and %s", name, prev, c.Name)
			seen[name] = c.Name
		}
	}
	s.Contains(seen, "setval")
	s.Contains(seen, "up")
	s.Contains(seen, "exit")
}

func (s *HandlerTestSuite) TestIncreaseSkill() {
	testCases := []struct {
		name   string
		line   string
		amount int
		want   string
	}{
		{name: "default amount", line: "inc blade", amount: 1, want: "Skill Blade [Strength] increased!"},
		{name: "explicit amount", line: "increase-skill blade 3", amount: 3, want: "Skill Blade [Strength] increased by 3!"},
		{name: "negative amount", line: "INCREASE blade -2", amount: -2, want: "Skill Blade [Strength] increased by -2!"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				IncreaseSkill(s.ctx, &progression.IncreaseSkillInput{
					Character: s.char,
					Skill:     "blade",
					Amount:    tc.amount,
				}).
				Return(&progression.IncreaseSkillOutput{Skill: "Blade", Attribute: "Strength"}, nil)

			s.Contains(s.exec(tc.line), tc.want)
		})
	}
}

func (s *HandlerTestSuite) TestIncreaseSkillAnnouncesLevelUp() {
	s.mockService.EXPECT().
		IncreaseSkill(s.ctx, gomock.Any()).
		Return(&progression.IncreaseSkillOutput{Skill: "Blade", Attribute: "Strength", CanLevelUp: true}, nil)

	s.Contains(s.exec("inc blade"), "Ready to level up!")
}

func (s *HandlerTestSuite) TestArgumentErrorsNeverReachTheService() {
	testCases := []struct {
		name string
		line string
		want string
	}{
		{name: "missing skill", line: "inc", want: "increase-skill takes a skill name"},
		{name: "bad amount", line: "inc blade lots", want: `"lots" is not a whole number`},
		{name: "set-value arity", line: "set level", want: "set-value takes"},
		{name: "set-value target", line: "set mood 3", want: `"mood" is not one of: level, attributes, skills`},
		{name: "set-value short target", line: "set le 3", want: "too short"},
		{name: "set level extra", line: "set level 3 4", want: "set-value level takes only a value"},
		{name: "set level value", line: "set level three", want: `"three" is not a whole number`},
		{name: "set attribute arity", line: "set attr 3", want: "set-value attribute takes a name and a value"},
		{name: "set skill value", line: "set skill blade high", want: `"high" is not one of: major, minor`},
		{name: "set skill short mode", line: "set skill blade ma", want: `"ma" is too short`},
		{name: "print section", line: "print spells", want: `"spells" is not one of`},
		{name: "save arguments", line: "save now", want: "save takes no arguments"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := s.exec(tc.line)
			s.Contains(out, "error:")
			s.Contains(out, tc.want)
		})
	}
}

func (s *HandlerTestSuite) TestSetValue() {
	s.Run("level", func() {
		s.mockService.EXPECT().
			SetLevel(s.ctx, &progression.SetLevelInput{Character: s.char, Level: 4}).
			Return(&progression.SetLevelOutput{Level: 4}, nil)

		s.Contains(s.exec("set-value level 4"), "Level is now 4")
	})

	s.Run("attribute", func() {
		s.mockService.EXPECT().
			SetAttributeValue(s.ctx, &progression.SetAttributeValueInput{Character: s.char, Attribute: "str", Value: 61}).
			Return(&progression.SetAttributeValueOutput{Attribute: "Strength", Value: 61}, nil)

		s.Contains(s.exec("setval attr str 61"), "Attribute Strength is now 61")
	})

	s.Run("skill value", func() {
		s.mockService.EXPECT().
			SetSkillValue(s.ctx, &progression.SetSkillValueInput{Character: s.char, Skill: "sneak", Value: 30}).
			Return(&progression.SetSkillValueOutput{Skill: "Sneak", Value: 30}, nil)

		s.Contains(s.exec("set skills sneak 30"), "Skill Sneak is now 30")
	})

	s.Run("skill mode", func() {
		s.mockService.EXPECT().
			SetSkillMode(s.ctx, &progression.SetSkillModeInput{Character: s.char, Skill: "sneak", Major: true}).
			Return(&progression.SetSkillModeOutput{Skill: "Sneak", Major: true}, nil)

		s.Contains(s.exec("set-val skill sneak MAJOR"), "Skill Sneak is now major")
	})

	s.Run("skill mode prefix", func() {
		s.mockService.EXPECT().
			SetSkillMode(s.ctx, &progression.SetSkillModeInput{Character: s.char, Skill: "blade", Major: true}).
			Return(&progression.SetSkillModeOutput{Skill: "Blade", Major: true}, nil)

		s.Contains(s.exec("set skill blade maj"), "Skill Blade is now major")
	})

	s.Run("skill minor prefix", func() {
		s.mockService.EXPECT().
			SetSkillMode(s.ctx, &progression.SetSkillModeInput{Character: s.char, Skill: "blade", Major: false}).
			Return(&progression.SetSkillModeOutput{Skill: "Blade", Major: false}, nil)

		s.Contains(s.exec("set skill blade Min"), "Skill Blade is now minor")
	})

	s.Run("negative skill value", func() {
		s.mockService.EXPECT().
			SetSkillValue(s.ctx, &progression.SetSkillValueInput{Character: s.char, Skill: "blade", Value: -1}).
			Return(&progression.SetSkillValueOutput{Skill: "Blade", Value: -1}, nil)

		s.Contains(s.exec("set skill blade -1"), "Skill Blade is now -1")
	})
}

func (s *HandlerTestSuite) TestLevelUp() {
	s.mockService.EXPECT().
		LevelUp(s.ctx, &progression.LevelUpInput{Character: s.char, Attributes: []string{"str", "end", "spe"}}).
		Return(&progression.LevelUpOutput{
			Level: 2,
			Gains: []entities.Gain{
				{Attribute: "Strength", Amount: 5},
				{Attribute: "Endurance", Amount: 1},
				{Attribute: "Speed", Amount: 1},
			},
		}, nil)

	out := s.exec("up str end spe")
	s.Contains(out, "Hero is now level 2!")
	s.Contains(out, "Strength +5")
	s.Contains(out, "Speed +1")
}

func (s *HandlerTestSuite) TestServiceErrorsArePrinted() {
	s.mockService.EXPECT().
		LevelUp(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(errors.IllegalState("cannot level up yet: 3 of 10 major skill increases"), "could not level up"))

	out := s.exec("level-up str end spe")
	s.Contains(out, "error: could not level up: cannot level up yet: 3 of 10 major skill increases")
	s.NotContains(out, "ILLEGAL_STATE")
}

func (s *HandlerTestSuite) TestPlan() {
	s.Run("set", func() {
		s.mockService.EXPECT().
			SetPlan(s.ctx, &progression.SetPlanInput{Character: s.char, Attributes: []string{"str", "end"}}).
			Return(&progression.SetPlanOutput{Attributes: []string{"Strength", "Endurance"}}, nil)

		s.Contains(s.exec("plan str end"), "Planned attributes: Strength, Endurance")
	})

	s.Run("clear", func() {
		s.mockService.EXPECT().
			ClearPlan(s.ctx, &progression.ClearPlanInput{Character: s.char}).
			Return(&progression.ClearPlanOutput{}, nil)

		s.Contains(s.exec("plan Clear"), "Plan cleared")
	})

	s.Run("show", func() {
		s.Contains(s.exec("plan"), "no attributes planned")
	})
}

func (s *HandlerTestSuite) TestSave() {
	s.mockService.EXPECT().
		SaveCharacter(s.ctx, &progression.SaveCharacterInput{Character: s.char}).
		Return(&progression.SaveCharacterOutput{Key: "Hero_lvl01", SavedAt: testutils.FixedTime}, nil)

	s.Contains(s.exec("save"), "Saved Hero_lvl01")
}

func (s *HandlerTestSuite) TestPrint() {
	s.Contains(s.exec("show"), "Attributes")
	s.Contains(s.exec("print attr"), "Increases")
	s.Contains(s.exec("print skil"), "Hand to Hand")
	s.Contains(s.exec("print char"), "Ready to level")
}

func (s *HandlerTestSuite) TestHelp() {
	out := s.exec("help")
	for _, c := range s.handler.Commands() {
		s.Contains(out, c.Name)
	}
}

func (s *HandlerTestSuite) TestUnknownAndEmpty() {
	s.Contains(s.exec("dance wildly"), "Unknown command: dance")
	s.Empty(s.exec("   "))
}

func (s *HandlerTestSuite) TestQuit() {
	s.True(s.handler.Execute(s.ctx, "quit"))
	s.True(s.handler.Execute(s.ctx, "EXIT"))
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
