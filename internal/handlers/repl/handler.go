// Package repl runs the interactive command loop over a single character
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
	"github.com/KirkDiggler/level-manager/internal/orchestrators/progression"
	"github.com/KirkDiggler/level-manager/internal/views"
)

// DefaultPrompt is written before every line read
const DefaultPrompt = "> "

const banner = `Level Manager

Type 'help' for a list of commands.`

// HandlerConfig holds dependencies for the command loop
type HandlerConfig struct {
	Service   progression.Service
	Character *entities.Character
	In        io.Reader
	Out       io.Writer
	Prompt    string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// Handler reads commands, dispatches them to the progression service and
// prints the results
type Handler struct {
	service  progression.Service
	char     *entities.Character
	in       io.Reader
	out      io.Writer
	prompt   string
	commands []*Command
	byName   map[string]*Command
}

// NewHandler creates a command loop with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	h := &Handler{
		service: cfg.Service,
		char:    cfg.Character,
		in:      cfg.In,
		out:     cfg.Out,
		prompt:  prompt,
	}
	h.commands = h.registry()
	h.byName = make(map[string]*Command)
	for _, c := range h.commands {
		for _, name := range c.Names() {
			h.byName[name] = c
		}
	}
	return h, nil
}

// Character returns the character the loop operates on
func (h *Handler) Character() *entities.Character {
	return h.char
}

// Commands returns the registered commands in help order
func (h *Handler) Commands() []*Command {
	out := make([]*Command, len(h.commands))
	copy(out, h.commands)
	return out
}

// Run loops until quit, end of input or ctx is done. Nothing is saved on exit.
func (h *Handler) Run(ctx context.Context) error {
	h.println(banner)

	scanner := bufio.NewScanner(h.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.printf("\n%s", h.prompt)
		if !scanner.Scan() {
			h.println("")
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read command")
			}
			return nil
		}

		if quit := h.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one input line and reports whether the loop should stop.
// Command failures are printed, never returned.
func (h *Handler) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	name := strings.ToLower(args[0])
	cmd, ok := h.byName[name]
	if !ok {
		h.println("Unknown command: " + name)
		return false
	}

	msg, err := cmd.run(ctx, args[1:])
	if err != nil {
		h.println(views.Error(errors.Describe(err)))
		return false
	}
	if msg != "" {
		h.println(msg)
	}
	return cmd.quits
}

func (h *Handler) println(s string) {
	_, _ = fmt.Fprintln(h.out, s)
}

func (h *Handler) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}
