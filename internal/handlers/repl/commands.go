package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
	"github.com/KirkDiggler/level-manager/internal/views"
)

// Command is one verb of the loop
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string

	quits bool
	run   func(ctx context.Context, args []string) (string, error)
}

// Names returns the verb and its aliases, lower-cased
func (c *Command) Names() []string {
	names := make([]string, 0, len(c.Aliases)+1)
	names = append(names, strings.ToLower(c.Name))
	for _, alias := range c.Aliases {
		names = append(names, strings.ToLower(alias))
	}
	return names
}

func (h *Handler) registry() []*Command {
	return []*Command{
		{
			Name:    "print",
			Aliases: []string{"print-character", "show", "show-character", "character"},
			Usage:   "[all|character|attributes|skills|plan]",
			Summary: "Print the character, or one section of it",
			run:     h.print,
		},
		{
			Name:    "set-value",
			Aliases: []string{"setvalue", "set-val", "setval", "set"},
			Usage:   "level <n> | attribute <name> <n> | skill <name> <n|major|minor>",
			Summary: "Set up the character after creation",
			run:     h.setValue,
		},
		{
			Name:    "increase-skill",
			Aliases: []string{"increase", "inc"},
			Usage:   "<skill> [amount]",
			Summary: "Increase a skill by 1, or by amount (negative to undo)",
			run:     h.increaseSkill,
		},
		{
			Name:    "level-up",
			Aliases: []string{"levelup", "level", "up"},
			Usage:   "<att1> <att2> <att3>",
			Summary: "Level up, raising three distinct attributes",
			run:     h.levelUp,
		},
		{
			Name:    "plan",
			Usage:   "<att1> <att2> [att3] | clear",
			Summary: "Choose the attributes to raise at the next level-up",
			run:     h.plan,
		},
		{
			Name:    "save",
			Summary: "Save a snapshot for the current level, overwriting an earlier one",
			run:     h.save,
		},
		{
			Name:    "help",
			Summary: "Show this help",
			run:     h.help,
		},
		{
			Name:    "quit",
			Aliases: []string{"exit"},
			Summary: "Quit. Unsaved changes are lost",
			quits:   true,
			run: func(context.Context, []string) (string, error) {
				return "", nil
			},
		},
	}
}

func (h *Handler) print(_ context.Context, args []string) (string, error) {
	if len(args) > 1 {
		return "", errors.InvalidArgument("print takes at most one section")
	}
	if len(args) == 0 {
		return views.All(h.char), nil
	}

	section, err := matchKeyword(args[0], views.Sections())
	if err != nil {
		return "", errors.Wrap(err, "could not print")
	}
	return views.Render(h.char, section), nil
}

func (h *Handler) setValue(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 && len(args) != 3 {
		return "", errors.InvalidArgument("set-value takes level, attribute or skill, an optional name, and a value")
	}

	target, err := matchKeyword(args[0], []string{"level", "attributes", "skills"})
	if err != nil {
		return "", errors.Wrap(err, "could not set value")
	}

	switch target {
	case "level":
		if len(args) != 2 {
			return "", errors.InvalidArgument("set-value level takes only a value")
		}
		level, err := parseInt(args[1])
		if err != nil {
			return "", errors.Wrap(err, "could not set level")
		}
		out, err := h.service.SetLevel(ctx, &progression.SetLevelInput{Character: h.char, Level: level})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Level is now %d", out.Level), nil

	case "attributes":
		if len(args) != 3 {
			return "", errors.InvalidArgument("set-value attribute takes a name and a value")
		}
		value, err := parseInt(args[2])
		if err != nil {
			return "", errors.Wrap(err, "could not set attribute")
		}
		out, err := h.service.SetAttributeValue(ctx, &progression.SetAttributeValueInput{
			Character: h.char,
			Attribute: args[1],
			Value:     value,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Attribute %s is now %d", out.Attribute, out.Value), nil

	default:
		if len(args) != 3 {
			return "", errors.InvalidArgument("set-value skill takes a name and a value, major or minor")
		}
		return h.setSkill(ctx, args[1], args[2])
	}
}

// setSkill sets a value when value is a whole number, otherwise the
// loosely matched mode
func (h *Handler) setSkill(ctx context.Context, name, value string) (string, error) {
	if n, err := strconv.Atoi(value); err == nil {
		out, err := h.service.SetSkillValue(ctx, &progression.SetSkillValueInput{
			Character: h.char,
			Skill:     name,
			Value:     n,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Skill %s is now %d", out.Skill, out.Value), nil
	}

	mode, err := matchKeyword(value, []string{"major", "minor"})
	if err != nil {
		return "", errors.Wrap(err, "could not set skill, expected a whole number, major or minor")
	}
	out, err := h.service.SetSkillMode(ctx, &progression.SetSkillModeInput{
		Character: h.char,
		Skill:     name,
		Major:     mode == "major",
	})
	if err != nil {
		return "", err
	}
	mode = "minor"
	if out.Major {
		mode = "major"
	}
	return fmt.Sprintf("Skill %s is now %s", out.Skill, mode), nil
}

func (h *Handler) increaseSkill(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", errors.InvalidArgument("increase-skill takes a skill name and an optional amount")
	}

	amount := 1
	if len(args) == 2 {
		n, err := parseInt(args[1])
		if err != nil {
			return "", errors.Wrap(err, "could not increase skill")
		}
		amount = n
	}

	out, err := h.service.IncreaseSkill(ctx, &progression.IncreaseSkillInput{
		Character: h.char,
		Skill:     args[0],
		Amount:    amount,
	})
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Skill %s [%s] increased!", out.Skill, out.Attribute)
	if amount != 1 {
		msg = fmt.Sprintf("Skill %s [%s] increased by %d!", out.Skill, out.Attribute, amount)
	}
	if out.CanLevelUp {
		msg += "\n" + views.Good.Render("Ready to level up!")
	}
	return msg, nil
}

func (h *Handler) levelUp(ctx context.Context, args []string) (string, error) {
	out, err := h.service.LevelUp(ctx, &progression.LevelUpInput{
		Character:  h.char,
		Attributes: args,
	})
	if err != nil {
		return "", err
	}

	lines := []string{views.Good.Render(fmt.Sprintf("%s is now level %d!", h.char.Name, out.Level))}
	for _, g := range out.Gains {
		lines = append(lines, fmt.Sprintf("  %s +%d", g.Attribute, g.Amount))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) plan(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 && strings.EqualFold(args[0], "clear") {
		if _, err := h.service.ClearPlan(ctx, &progression.ClearPlanInput{Character: h.char}); err != nil {
			return "", err
		}
		return "Plan cleared", nil
	}
	if len(args) == 0 {
		return views.Plan(h.char), nil
	}

	out, err := h.service.SetPlan(ctx, &progression.SetPlanInput{
		Character:  h.char,
		Attributes: args,
	})
	if err != nil {
		return "", err
	}
	return "Planned attributes: " + strings.Join(out.Attributes, ", "), nil
}

func (h *Handler) save(ctx context.Context, args []string) (string, error) {
	if len(args) != 0 {
		return "", errors.InvalidArgument("save takes no arguments")
	}

	out, err := h.service.SaveCharacter(ctx, &progression.SaveCharacterInput{Character: h.char})
	if err != nil {
		return "", err
	}
	return "Saved " + out.Key, nil
}

func (h *Handler) help(context.Context, []string) (string, error) {
	rows := make([]views.HelpRow, 0, len(h.commands))
	for _, c := range h.commands {
		rows = append(rows, views.HelpRow{
			Verb:    c.Name,
			Aliases: c.Aliases,
			Usage:   c.Usage,
			Summary: c.Summary,
		})
	}
	return views.Help(rows), nil
}

// matchKeyword loosely matches word against keywords: a case-insensitive
// prefix of at least entities.MinNameLength characters.
func matchKeyword(word string, keywords []string) (string, error) {
	if len(word) < entities.MinNameLength {
		return "", errors.InvalidArgumentf("%q is too short, use at least %d characters",
			word, entities.MinNameLength)
	}

	var matches []string
	for _, k := range keywords {
		if entities.MatchesName(k, word) {
			matches = append(matches, k)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.InvalidArgumentf("%q is not one of: %s", word, strings.Join(keywords, ", "))
	default:
		return "", errors.AmbiguousMatch(fmt.Sprintf("%q matches %s", word, strings.Join(matches, ", ")), matches)
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("%q is not a whole number", s)
	}
	return n, nil
}
