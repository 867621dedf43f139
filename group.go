package argspec

import "slices"

// Group is a named set of arguments. A group is present when any member is present, or when
// every member is present if RequiresAll is set. Groups hold no values of their own.
type Group struct {
	Name        string
	Args        []string
	RequiresAll bool
	Required    bool
	Requires    []string
	Conflicts   []string
}

// NewGroup creates a group called name and applies configs in order
func NewGroup(name string, configs ...ConfigureGroupFunc) *Group {
	g := &Group{Name: name}
	for _, config := range configs {
		config(g)
	}

	return g
}

// Set applies configs to the group
func (g *Group) Set(configs ...ConfigureGroupFunc) {
	for _, config := range configs {
		config(g)
	}
}

// HasMember reports whether name is a member of the group
func (g *Group) HasMember(name string) bool {
	return slices.Contains(g.Args, name)
}

func (g *Group) addMember(name string) {
	if !g.HasMember(name) {
		g.Args = append(g.Args, name)
	}
}

func (g *Group) clone() *Group {
	c := *g
	c.Args = slices.Clone(g.Args)
	c.Requires = slices.Clone(g.Requires)
	c.Conflicts = slices.Clone(g.Conflicts)

	return &c
}

// WithMembers appends member argument names
func WithMembers(names ...string) ConfigureGroupFunc {
	return func(group *Group) {
		for _, n := range names {
			group.addMember(n)
		}
	}
}

// WithAllMembers makes the group present only when every member is present
func WithAllMembers(all bool) ConfigureGroupFunc {
	return func(group *Group) {
		group.RequiresAll = all
	}
}

// WithGroupRequired makes the group itself required
func WithGroupRequired(required bool) ConfigureGroupFunc {
	return func(group *Group) {
		group.Required = required
	}
}

// WithGroupRequires makes names required whenever the group is present
func WithGroupRequires(names ...string) ConfigureGroupFunc {
	return func(group *Group) {
		group.Requires = append(group.Requires, names...)
	}
}

// WithGroupConflicts forbids names from being present together with the group
func WithGroupConflicts(names ...string) ConfigureGroupFunc {
	return func(group *Group) {
		group.Conflicts = append(group.Conflicts, names...)
	}
}
