package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/form"
	"github.com/aretw0/jot/pkg/view"
)

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, s *Session, args []string) error
}

var (
	commands     map[string]command
	commandOrder []string
)

func register(name string, c command, aliases ...string) {
	commands[name] = c
	commandOrder = append(commandOrder, name)
	for _, a := range aliases {
		commands[a] = c
	}
}

func init() {
	commands = make(map[string]command)

	register("set", command{"set <field> <value>", "Fill a form field (title, description, date, priority)", runSet})
	register("add", command{"add field=value...", "Fill several fields and submit", runAdd})
	register("submit", command{"submit", "Validate the form and save the note", runSubmit})
	register("edit", command{"edit <id>", "Load a note into the form for editing", runEdit})
	register("cancel", command{"cancel", "Discard the form and return to new-note mode", runCancel})
	register("delete", command{"delete <id>", "Delete a note", runDelete}, "rm")
	register("search", command{"search [text]", "Filter the list by title (empty clears)", runSearch})
	register("filter", command{"filter [high|medium|low|all]", "Filter the list by priority", runFilter})
	register("list", command{"list [--format text|json|yaml]", "Show the filtered notes", runList}, "ls")
	register("show", command{"show", "Show the form draft", runShow})
	register("errors", command{"errors", "Show validation errors", runErrors})
	register("state", command{"state", "Dump component state as JSON", runState})
	register("help", command{"help", "List commands", runHelp}, "?")
	register("quit", command{"quit", "Leave the session", runQuit}, "exit")
}

func usage(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
}

func runSet(_ context.Context, s *Session, args []string) error {
	if len(args) < 1 {
		return usage("set")
	}
	return s.form.UpdateField(args[0], strings.Join(args[1:], " "))
}

func runAdd(ctx context.Context, s *Session, args []string) error {
	if len(args) == 0 {
		return usage("add")
	}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return usage("add")
		}
		if err := s.form.UpdateField(name, value); err != nil {
			return err
		}
	}
	return runSubmit(ctx, s, nil)
}

func runSubmit(ctx context.Context, s *Session, _ []string) error {
	res, err := s.form.Submit(ctx)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case form.Rejected:
		s.printErrors(res.Errors)
	case form.Added:
		s.styles.ok.Fprintf(s.out, "added %s\n", res.Note.ID)
	case form.Updated:
		s.styles.ok.Fprintf(s.out, "updated %s\n", res.Note.ID)
	case form.Discarded:
		s.styles.err.Fprintf(s.out, "note %s was deleted, edit discarded\n", res.Note.ID)
	}
	return nil
}

func runEdit(ctx context.Context, s *Session, args []string) error {
	if len(args) != 1 {
		return usage("edit")
	}
	if err := s.form.BeginEditByID(ctx, args[0]); err != nil {
		return err
	}
	s.printDraft()
	return nil
}

func runCancel(_ context.Context, s *Session, _ []string) error {
	s.form.Cancel()
	return nil
}

func runDelete(ctx context.Context, s *Session, args []string) error {
	if len(args) != 1 {
		return usage("delete")
	}
	if _, err := s.svc.Dispatch(ctx, core.DeleteIntent(args[0])); err != nil {
		return err
	}
	s.styles.ok.Fprintf(s.out, "deleted %s\n", args[0])
	return nil
}

func runSearch(_ context.Context, s *Session, args []string) error {
	s.filter.Query = strings.Join(args, " ")
	return nil
}

func runFilter(_ context.Context, s *Session, args []string) error {
	if len(args) > 1 {
		return usage("filter")
	}
	var raw string
	if len(args) == 1 {
		raw = args[0]
	}
	p, err := view.ParseFilterPriority(raw)
	if err != nil {
		return err
	}
	s.filter.Priority = p
	return nil
}

func runList(ctx context.Context, s *Session, args []string) error {
	format := "text"
	switch {
	case len(args) == 0:
	case len(args) == 2 && args[0] == "--format":
		format = args[1]
	case len(args) == 1 && strings.HasPrefix(args[0], "--format="):
		format = strings.TrimPrefix(args[0], "--format=")
	default:
		return usage("list")
	}

	notes, err := s.svc.List(ctx)
	if err != nil {
		return err
	}
	res := view.Render(notes, s.filter)

	switch format {
	case "text":
		if res.Empty {
			s.styles.dim.Fprintln(s.out, view.Placeholder)
			return nil
		}
		for _, n := range res.Notes {
			s.printCard(n)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(s.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(res.Notes)
	case "yaml":
		encoder := yaml.NewEncoder(s.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(res.Notes); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("%w: unknown format %q (text, json, yaml)", ErrUsage, format)
}

func runShow(_ context.Context, s *Session, _ []string) error {
	s.printDraft()
	return nil
}

func runErrors(_ context.Context, s *Session, _ []string) error {
	s.printErrors(s.form.Errors())
	return nil
}

func runState(_ context.Context, s *Session, _ []string) error {
	state := map[string]any{
		s.svc.ComponentType():  s.svc.State(),
		s.form.ComponentType(): s.form.State(),
		"filter": map[string]string{
			"query":    s.filter.Query,
			"priority": string(s.filter.Priority),
		},
	}
	for _, c := range s.components {
		state[c.ComponentType()] = c.State()
	}
	encoder := json.NewEncoder(s.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(state)
}

func runHelp(_ context.Context, s *Session, _ []string) error {
	for _, name := range commandOrder {
		c := commands[name]
		fmt.Fprintf(s.out, "  %-32s %s\n", c.usage, c.help)
	}
	return nil
}

func runQuit(context.Context, *Session, []string) error {
	return ErrQuit
}

func (s *Session) printCard(n core.Note) {
	fmt.Fprintf(s.out, "%s %s\n", s.styles.dim.Sprintf("[%s]", n.ID), s.styles.title.Sprint(n.Title))
	fmt.Fprintf(s.out, "  Description: %s\n", n.Description)
	fmt.Fprintf(s.out, "  Date: %s\n", n.Date)
	fmt.Fprintf(s.out, "  Priority: %s\n", s.styles.priority(n.Priority))
}

func (s *Session) printDraft() {
	d := s.form.Draft()
	fmt.Fprintf(s.out, "mode: %s\n", s.form.Mode())
	for _, f := range core.Fields() {
		fmt.Fprintf(s.out, "  %s: %s\n", f, d.Get(f))
	}
}

func (s *Session) printErrors(errs core.ValidationErrors) {
	for _, f := range errs.Fields() {
		s.styles.err.Fprintf(s.out, "  %s: %s\n", f, errs[f])
	}
}
