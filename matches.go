package argspec

import (
	"slices"

	"github.com/napalu/argspec/types"
	"github.com/napalu/argspec/types/orderedmap"
)

// Matches is the result of a successful resolution. Present arguments are kept in declaration order.
type Matches struct {
	args   *orderedmap.OrderedMap[string, *MatchedArg]
	groups *orderedmap.OrderedMap[string, struct{}]
}

func newMatches() *Matches {
	return &Matches{
		args:   orderedmap.NewOrderedMap[string, *MatchedArg](),
		groups: orderedmap.NewOrderedMap[string, struct{}](),
	}
}

// IsPresent reports whether the argument or group called name is present
func (m *Matches) IsPresent(name string) bool {
	return m.args.Has(name) || m.groups.Has(name)
}

// IsGroupPresent reports whether the group called name is present
func (m *Matches) IsGroupPresent(name string) bool {
	return m.groups.Has(name)
}

// Get returns the resolved state of an argument
func (m *Matches) Get(name string) (*MatchedArg, bool) {
	return m.args.Get(name)
}

// Value returns the first value of name
func (m *Matches) Value(name string) (string, bool) {
	ma, ok := m.args.Get(name)
	if !ok || len(ma.Values) == 0 {
		return "", false
	}

	return ma.Values[0], true
}

// Values returns every value of name in supply order
func (m *Matches) Values(name string) []string {
	if ma, ok := m.args.Get(name); ok {
		return slices.Clone(ma.Values)
	}

	return nil
}

// Occurrences returns the number of explicit occurrences of name, 0 when absent or defaulted
func (m *Matches) Occurrences(name string) int {
	if ma, ok := m.args.Get(name); ok {
		return ma.Occurrences
	}

	return 0
}

// Source returns where the values of name came from
func (m *Matches) Source(name string) (types.ValueSource, bool) {
	if ma, ok := m.args.Get(name); ok {
		return ma.Source, true
	}

	return 0, false
}

// Indices returns the token position of the occurrence supplying each value of name
func (m *Matches) Indices(name string) []int {
	if ma, ok := m.args.Get(name); ok {
		return slices.Clone(ma.Indices)
	}

	return nil
}

// Args returns the present argument names in declaration order
func (m *Matches) Args() []string {
	return m.args.Keys()
}

// Groups returns the present group names in declaration order
func (m *Matches) Groups() []string {
	return m.groups.Keys()
}
