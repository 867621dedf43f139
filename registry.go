package argspec

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/i18n"
	"github.com/napalu/argspec/types/orderedmap"
	"github.com/rs/zerolog"
)

// Registry owns a set of arguments and groups. Arguments and groups are added first, then the
// registry is compiled once, after which it is read-only and may serve concurrent resolutions.
type Registry struct {
	args        *orderedmap.OrderedMap[string, *Argument]
	groups      *orderedmap.OrderedMap[string, *Group]
	longs       map[string]string
	shorts      map[rune]string
	positionals []*Argument
	logger      zerolog.Logger
	provider    i18n.MessageProvider
	pendingErr  error
	compileErr  error
	once        sync.Once
	frozen      atomic.Bool
}

// NewRegistry creates an empty registry
func NewRegistry(configs ...ConfigureRegistryFunc) *Registry {
	r := &Registry{
		args:   orderedmap.NewOrderedMap[string, *Argument](),
		groups: orderedmap.NewOrderedMap[string, *Group](),
		longs:  map[string]string{},
		shorts: map[rune]string{},
		logger: zerolog.Nop(),
	}
	for _, config := range configs {
		config(r)
	}

	return r
}

// AddArg registers a copy of arg. An argument without index or switches becomes the next positional.
func (r *Registry) AddArg(arg *Argument) error {
	if arg == nil || arg.Name == "" {
		return errs.NewEmptyName()
	}
	if r.frozen.Load() {
		return errs.NewRegistryFrozen(arg.Name)
	}
	if r.args.Has(arg.Name) || r.groups.Has(arg.Name) {
		return errs.NewDuplicateArgument(arg.Name)
	}

	a := arg.clone()
	a.ensureInit()
	if a.Index == 0 && a.Short == 0 && a.Long == "" && len(a.Aliases) == 0 {
		WithIndex(r.nextIndex())(a, nil)
	}
	r.args.Set(a.Name, a)

	return nil
}

// AddArgs registers several arguments, stopping at the first error
func (r *Registry) AddArgs(args ...*Argument) error {
	for _, a := range args {
		if err := r.AddArg(a); err != nil {
			return err
		}
	}

	return nil
}

// AddGroup registers a copy of group
func (r *Registry) AddGroup(group *Group) error {
	if group == nil || group.Name == "" {
		return errs.NewEmptyName()
	}
	if r.frozen.Load() {
		return errs.NewRegistryFrozen(group.Name)
	}
	if r.args.Has(group.Name) || r.groups.Has(group.Name) {
		return errs.NewDuplicateArgument(group.Name)
	}
	r.groups.Set(group.Name, group.clone())

	return nil
}

func (r *Registry) nextIndex() int {
	n := 0
	for el := r.args.Front(); el != nil; el = el.Next() {
		if el.Value.Index > n {
			n = el.Value.Index
		}
	}

	return n + 1
}

// Compile validates the declarations and freezes the registry. It runs once; later calls return
// the first result.
func (r *Registry) Compile() error {
	r.once.Do(func() {
		r.frozen.Store(true)
		if r.pendingErr != nil {
			r.compileErr = r.pendingErr
			return
		}
		r.compileErr = r.compile()
		if r.compileErr != nil {
			r.logger.Debug().Err(r.compileErr).Msg("compile failed")
		}
	})

	return r.compileErr
}

// MustCompile compiles the registry and panics on a configuration error
func (r *Registry) MustCompile() *Registry {
	if err := r.Compile(); err != nil {
		panic(err)
	}

	return r
}

func (r *Registry) compile() error {
	for el := r.args.Front(); el != nil; el = el.Next() {
		a := el.Value
		for _, gn := range a.Groups {
			if r.args.Has(gn) {
				return errs.NewDuplicateArgument(gn)
			}
			g, ok := r.groups.Get(gn)
			if !ok {
				g = NewGroup(gn)
				r.groups.Set(gn, g)
			}
			g.addMember(a.Name)
		}
	}

	if err := r.indexSwitches(); err != nil {
		return err
	}
	if err := r.indexPositionals(); err != nil {
		return err
	}

	return r.checkReferences()
}

func (r *Registry) indexSwitches() error {
	for el := r.args.Front(); el != nil; el = el.Next() {
		a := el.Value
		if a.IsPositional() {
			if a.Short != 0 || a.Long != "" || len(a.Aliases) > 0 {
				return errs.NewPositionalWithSwitch(a.Name)
			}
			continue
		}
		if a.Short != 0 {
			if owner, ok := r.shorts[a.Short]; ok {
				return errs.NewDuplicateSwitch("-"+string(a.Short), owner, a.Name)
			}
			r.shorts[a.Short] = a.Name
		}
		longs := make([]string, 0, len(a.Aliases)+1)
		if a.Long != "" {
			longs = append(longs, a.Long)
		}
		for _, al := range a.Aliases {
			longs = append(longs, al.Name)
		}
		for _, l := range longs {
			if owner, ok := r.longs[l]; ok {
				return errs.NewDuplicateSwitch("--"+l, owner, a.Name)
			}
			r.longs[l] = a.Name
		}
	}

	return nil
}

func (r *Registry) indexPositionals() error {
	byIndex := map[int]*Argument{}
	highest := 0
	for el := r.args.Front(); el != nil; el = el.Next() {
		a := el.Value
		if !a.IsPositional() {
			continue
		}
		if other, ok := byIndex[a.Index]; ok {
			return errs.NewDuplicatePositionalIndex(a.Index, other.Name, a.Name)
		}
		byIndex[a.Index] = a
		highest = max(highest, a.Index)
	}

	r.positionals = make([]*Argument, 0, highest)
	for i := 1; i <= highest; i++ {
		a, ok := byIndex[i]
		if !ok {
			return errs.NewPositionalIndexGap(i)
		}
		if a.IsMultiple() && i < highest {
			return errs.NewPositionalMultipleNotLast(a.Name)
		}
		r.positionals = append(r.positionals, a)
	}

	return nil
}

// valueRules need an argument with values as their trigger and cannot name a group
var valueRules = map[string]bool{
	"overrides_with":   true,
	"required_if":      true,
	"default_value_if": true,
}

func (r *Registry) checkReferences() error {
	for el := r.args.Front(); el != nil; el = el.Next() {
		a := el.Value
		for _, ref := range a.references() {
			if r.args.Has(ref.Value) {
				continue
			}
			if !valueRules[ref.Key] && r.groups.Has(ref.Value) {
				continue
			}
			return errs.NewUnknownReference(a.Name, ref.Value, ref.Key)
		}
	}

	for el := r.groups.Front(); el != nil; el = el.Next() {
		g := el.Value
		for _, m := range g.Args {
			if !r.args.Has(m) {
				return errs.NewUnknownGroupMember(g.Name, m)
			}
		}
		for _, ref := range g.Requires {
			if !r.known(ref) {
				return errs.NewUnknownReference(g.Name, ref, "requires")
			}
		}
		for _, ref := range g.Conflicts {
			if !r.known(ref) {
				return errs.NewUnknownReference(g.Name, ref, "conflicts_with")
			}
		}
	}

	return nil
}

func (r *Registry) known(name string) bool {
	return r.args.Has(name) || r.groups.Has(name)
}

// Arg returns the argument called name
func (r *Registry) Arg(name string) (*Argument, bool) {
	return r.args.Get(name)
}

// Group returns the group called name
func (r *Registry) Group(name string) (*Group, bool) {
	return r.groups.Get(name)
}

// Args returns all arguments in declaration order
func (r *Registry) Args() []*Argument {
	return r.args.Values()
}

// Groups returns all groups in declaration order. Groups created from argument memberships follow
// explicitly added ones.
func (r *Registry) Groups() []*Group {
	return r.groups.Values()
}

// Positionals returns the positional arguments ordered by index. The registry must be compiled.
func (r *Registry) Positionals() []*Argument {
	return slices.Clone(r.positionals)
}

// ByLong returns the argument selected by a long switch or alias, without leading hyphens
func (r *Registry) ByLong(long string) (*Argument, bool) {
	if name, ok := r.longs[long]; ok {
		return r.args.Get(name)
	}

	return nil, false
}

// ByShort returns the argument selected by a short switch
func (r *Registry) ByShort(short rune) (*Argument, bool) {
	if name, ok := r.shorts[short]; ok {
		return r.args.Get(name)
	}

	return nil, false
}

// Logger returns the registry's logger
func (r *Registry) Logger() zerolog.Logger {
	return r.logger
}

// FormatError renders err through the registry's message provider, or the package default
func (r *Registry) FormatError(err error) string {
	return FormatError(err, r.provider)
}

// FormatError renders a translatable err through provider. A nil provider means the package default.
// Other errors are returned as err.Error().
func FormatError(err error, provider i18n.MessageProvider) string {
	if provider == nil {
		provider = i18n.DefaultMessageProvider()
	}
	var f interface {
		Format(i18n.MessageProvider) string
	}
	if errors.As(err, &f) {
		return f.Format(provider)
	}

	return err.Error()
}

// Resolve compiles the registry if needed and resolves raw. Configuration errors panic; raw naming
// an unknown argument returns a ConfigError.
func (r *Registry) Resolve(raw RawOccurrences) (*Matches, error) {
	r.MustCompile()
	return newResolver(r, raw).resolve()
}

// Resolve builds a registry from args and groups and resolves raw against it
func Resolve(args []*Argument, groups []*Group, raw RawOccurrences) (*Matches, error) {
	r := NewRegistry()
	if err := r.AddArgs(args...); err != nil {
		panic(err)
	}
	for _, g := range groups {
		if err := r.AddGroup(g); err != nil {
			panic(err)
		}
	}

	return r.Resolve(raw)
}
