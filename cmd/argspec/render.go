package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/napalu/argspec"
	"github.com/napalu/argspec/types"
	"github.com/spf13/cobra"
)

// printer renders command results. Styles are bound to the output writer so colour is dropped
// when it is not a terminal.
type printer struct {
	out, errOut io.Writer
	ok          lipgloss.Style
	fail        lipgloss.Style
	name        lipgloss.Style
	dim         lipgloss.Style
	value       lipgloss.Style
}

func newPrinter(cmd *cobra.Command) *printer {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	er := lipgloss.NewRenderer(cmd.ErrOrStderr())

	return &printer{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		ok:     r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}),
		fail:   er.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}),
		name:   r.NewStyle().Bold(true),
		dim:    r.NewStyle().Faint(true),
		value:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}),
	}
}

func (p *printer) success(msg string) {
	fmt.Fprintln(p.out, p.ok.Render("ok")+" "+msg)
}

func (p *printer) failure(msg string) {
	fmt.Fprintln(p.errOut, p.fail.Render("error")+" "+msg)
}

func (p *printer) declarations(reg *argspec.Registry) {
	width := 0
	for _, a := range reg.Args() {
		width = max(width, len(a.Name))
	}
	for _, a := range reg.Args() {
		name := p.name.Render(fmt.Sprintf("%-*s", width, a.Name))
		fmt.Fprintf(p.out, "  %s  %s  %s\n", name, a.String(), p.dim.Render(a.Settings.String()))
	}
	for _, g := range reg.Groups() {
		fmt.Fprintf(p.out, "  %s %s  %s\n", p.dim.Render("group"), p.name.Render(g.Name), strings.Join(g.Args, ", "))
	}
}

func (p *printer) matches(reg *argspec.Registry, m *argspec.Matches) {
	width := 0
	for _, name := range m.Args() {
		width = max(width, len(name))
	}
	for _, name := range m.Args() {
		ma, _ := m.Get(name)
		line := fmt.Sprintf("  %s  %s", p.name.Render(fmt.Sprintf("%-*s", width, name)), p.dim.Render(ma.Source.String()))
		if ma.Source == types.Explicit {
			line += p.dim.Render(fmt.Sprintf(" x%d", ma.Occurrences))
		}
		if len(ma.Values) > 0 {
			quoted := make([]string, len(ma.Values))
			for i, v := range ma.Values {
				quoted[i] = p.value.Render(fmt.Sprintf("%q", v))
			}
			line += "  " + strings.Join(quoted, " ")
		}
		fmt.Fprintln(p.out, line)
	}
	if groups := m.Groups(); len(groups) > 0 {
		fmt.Fprintf(p.out, "  %s %s\n", p.dim.Render("groups"), strings.Join(groups, ", "))
	}
	if absent := len(reg.Args()) - len(m.Args()); absent > 0 {
		fmt.Fprintln(p.out, p.dim.Render(fmt.Sprintf("  %d absent", absent)))
	}
}

func (p *printer) explain(a *argspec.Argument) {
	fmt.Fprintln(p.out, p.name.Render(a.String()))
	fmt.Fprint(p.out, a.Describe())
}
