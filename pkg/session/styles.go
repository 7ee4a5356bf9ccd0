package session

import (
	"github.com/fatih/color"

	"github.com/aretw0/jot/pkg/core"
)

type styles struct {
	ok    *color.Color
	err   *color.Color
	title *color.Color
	dim   *color.Color
	prio  map[core.Priority]*color.Color
}

func newStyles(enabled bool) styles {
	st := styles{
		ok:    color.New(color.FgGreen),
		err:   color.New(color.FgRed),
		title: color.New(color.Bold),
		dim:   color.New(color.Faint),
		prio: map[core.Priority]*color.Color{
			core.PriorityHigh:   color.New(color.FgRed, color.Bold),
			core.PriorityMedium: color.New(color.FgYellow),
			core.PriorityLow:    color.New(color.FgGreen),
		},
	}
	for _, c := range st.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

func (st styles) all() []*color.Color {
	out := []*color.Color{st.ok, st.err, st.title, st.dim}
	for _, c := range st.prio {
		out = append(out, c)
	}
	return out
}

func (st styles) priority(p core.Priority) string {
	if c, ok := st.prio[p]; ok {
		return c.Sprint(string(p))
	}
	return string(p)
}
