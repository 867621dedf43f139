package argspec

import (
	"slices"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/google/uuid"
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
	"github.com/rs/zerolog"
)

// resolver holds the state of one resolution. The registry is only read.
type resolver struct {
	reg      *Registry
	raw      RawOccurrences
	explicit map[string][]Occurrence
	defaults map[string][]string
	dropped  map[string]bool
	required []string
	isReq    map[string]bool
	visited  map[string]bool
	work     *deque.Deque
	log      zerolog.Logger
}

func newResolver(reg *Registry, raw RawOccurrences) *resolver {
	log := reg.logger
	if log.GetLevel() <= zerolog.DebugLevel {
		log = log.With().Str("resolution", uuid.NewString()).Logger()
	}

	return &resolver{
		reg:      reg,
		raw:      raw,
		explicit: map[string][]Occurrence{},
		defaults: map[string][]string{},
		dropped:  map[string]bool{},
		isReq:    map[string]bool{},
		visited:  map[string]bool{},
		work:     deque.New(),
		log:      log,
	}
}

func (s *resolver) resolve() (*Matches, error) {
	for _, name := range s.raw.Names() {
		if _, ok := s.reg.Arg(name); !ok {
			return nil, errs.NewUnknownOccurrence(name)
		}
	}

	s.collectPresence()
	s.applyOverrides()
	if err := s.checkConflicts(); err != nil {
		return nil, err
	}
	s.computeRequired()
	s.propagateRequires()
	s.applyDefaults()
	s.propagateRequires()
	if err := s.checkMissing(); err != nil {
		return nil, err
	}
	if err := s.checkCardinality(); err != nil {
		return nil, err
	}
	if err := s.checkContent(); err != nil {
		return nil, err
	}

	return s.matches(), nil
}

func (s *resolver) collectPresence() {
	for _, a := range s.reg.Args() {
		occ := s.raw[a.Name]
		if len(occ) == 0 {
			continue
		}
		if len(occ) > 1 && slices.Contains(a.OverridesWith, a.Name) {
			last := occ[0]
			for _, o := range occ[1:] {
				if o.Position >= last.Position {
					last = o
				}
			}
			s.log.Debug().Str("arg", a.Name).Int("dropped", len(occ)-1).Msg("self override keeps last occurrence")
			occ = []Occurrence{last}
		}
		s.explicit[a.Name] = slices.Clone(occ)
	}
}

// applyOverrides drops the side of each overriding pair whose latest occurrence came first.
// The declaring argument wins ties.
func (s *resolver) applyOverrides() {
	for _, a := range s.reg.Args() {
		for _, other := range a.OverridesWith {
			if other == a.Name || !s.isExplicit(a.Name) || !s.isExplicit(other) {
				continue
			}
			if latest(s.explicit[a.Name]) < latest(s.explicit[other]) {
				s.drop(a.Name, other)
				continue
			}
			s.drop(other, a.Name)
		}
	}
}

func (s *resolver) drop(name, by string) {
	delete(s.explicit, name)
	s.dropped[name] = true
	s.log.Debug().Str("arg", name).Str("by", by).Msg("overridden")
}

func latest(occ []Occurrence) int {
	pos := occ[0].Position
	for _, o := range occ[1:] {
		pos = max(pos, o.Position)
	}

	return pos
}

func (s *resolver) checkConflicts() error {
	for _, a := range s.reg.Args() {
		if !s.isExplicit(a.Name) {
			continue
		}
		for _, c := range a.ConflictsWith {
			if g, ok := s.reg.Group(c); ok {
				for _, m := range g.Args {
					if m != a.Name && s.isExplicit(m) {
						return errs.NewArgumentConflict(a.Name, m)
					}
				}
				continue
			}
			if c != a.Name && s.isExplicit(c) {
				return errs.NewArgumentConflict(a.Name, c)
			}
		}
	}

	for _, g := range s.reg.Groups() {
		if !s.isPresent(g.Name) {
			continue
		}
		for _, c := range g.Conflicts {
			if other, ok := s.reg.Group(c); ok {
				for _, m := range other.Args {
					if !g.HasMember(m) && s.isPresent(m) {
						return errs.NewArgumentConflict(g.Name, m)
					}
				}
				continue
			}
			if !g.HasMember(c) && s.isPresent(c) {
				return errs.NewArgumentConflict(g.Name, c)
			}
		}
	}

	return nil
}

func (s *resolver) computeRequired() {
	for _, a := range s.reg.Args() {
		if a.Is(types.Required) {
			s.require(a.Name, "required")
		}
		if !s.isPresent(a.Name) && len(a.RequiredUnless) > 0 && !s.unlessSatisfied(a) {
			s.require(a.Name, "required_unless")
		}
		for _, ri := range a.RequiredIfs {
			if v, ok := s.firstValue(ri.Arg); ok && v == ri.Value {
				s.require(a.Name, "required_if")
				break
			}
		}
	}
	for _, g := range s.reg.Groups() {
		if g.Required {
			s.require(g.Name, "required")
		}
	}
}

func (s *resolver) unlessSatisfied(a *Argument) bool {
	if a.Is(types.RequiredUnlessAll) {
		for _, n := range a.RequiredUnless {
			if !s.isPresent(n) {
				return false
			}
		}
		return true
	}

	return slices.ContainsFunc(a.RequiredUnless, s.isPresent)
}

func (s *resolver) require(name, rule string) {
	if s.isReq[name] {
		return
	}
	s.isReq[name] = true
	s.required = append(s.required, name)
	s.log.Debug().Str("arg", name).Str("rule", rule).Msg("required")
}

// propagateRequires walks every present argument and group not yet visited and adds the targets
// of their matching requires rules. Names already visited are never processed again.
func (s *resolver) propagateRequires() {
	for _, a := range s.reg.Args() {
		s.enqueue(a.Name)
	}
	for _, g := range s.reg.Groups() {
		s.enqueue(g.Name)
	}

	for s.work.Len() > 0 {
		v, _ := s.work.PopFront()
		name := v.(string)
		if a, ok := s.reg.Arg(name); ok {
			for _, req := range a.Requires {
				if req.Value != nil {
					if first, ok := s.firstValue(a.Name); !ok || first != *req.Value {
						continue
					}
				}
				s.require(req.Target, "requires")
				s.enqueue(req.Target)
			}
			continue
		}
		if g, ok := s.reg.Group(name); ok {
			for _, t := range g.Requires {
				s.require(t, "requires")
				s.enqueue(t)
			}
		}
	}
}

func (s *resolver) enqueue(name string) {
	if s.visited[name] || !s.isPresent(name) {
		return
	}
	s.visited[name] = true
	s.work.PushBack(name)
}

func (s *resolver) applyDefaults() {
	for _, a := range s.reg.Args() {
		if s.isPresent(a.Name) || s.dropped[a.Name] {
			continue
		}
		def, ok := s.defaultFor(a)
		if !ok {
			continue
		}
		s.defaults[a.Name] = split(a, def)
		s.log.Debug().Str("arg", a.Name).Str("value", def).Msg("default applied")
	}
}

func (s *resolver) defaultFor(a *Argument) (string, bool) {
	for _, d := range a.DefaultIfs {
		if !s.isPresent(d.Arg) {
			continue
		}
		if d.Value == nil {
			return d.Default, true
		}
		if v, ok := s.firstValue(d.Arg); ok && v == *d.Value {
			return d.Default, true
		}
	}
	if a.DefaultValue != nil {
		return *a.DefaultValue, true
	}

	return "", false
}

func (s *resolver) checkMissing() error {
	for _, a := range s.reg.Args() {
		if s.isReq[a.Name] && !s.isPresent(a.Name) {
			return errs.NewMissingRequired(a.Name)
		}
	}
	for _, g := range s.reg.Groups() {
		if s.isReq[g.Name] && !s.isPresent(g.Name) {
			return errs.NewMissingRequired(g.Name)
		}
	}

	return nil
}

func (s *resolver) checkCardinality() error {
	for _, a := range s.reg.Args() {
		if !s.isExplicit(a.Name) || !a.TakesValue() {
			continue
		}
		n := len(s.values(a.Name))
		if num := a.EffectiveNumValues(); num > 0 {
			if (a.IsMultiple() && n%num != 0) || (!a.IsMultiple() && n != num) {
				return errs.NewWrongNumberOfValues(a.Name, num, n)
			}
			continue
		}
		if a.MaxValues > 0 && n > a.MaxValues {
			return errs.NewTooManyValues(a.Name, a.MaxValues, n)
		}
		if a.MinValues > 0 && n < a.MinValues {
			return errs.NewTooFewValues(a.Name, a.MinValues, n)
		}
	}

	return nil
}

func (s *resolver) checkContent() error {
	for _, a := range s.reg.Args() {
		if !s.isExplicit(a.Name) || !a.TakesValue() {
			continue
		}
		for _, v := range s.values(a.Name) {
			if v == "" && !a.Is(types.EmptyValues) {
				return errs.NewEmptyValue(a.Name)
			}
			if len(a.PossibleValues) > 0 && !slices.Contains(a.PossibleValues, v) {
				return errs.NewNotPossibleValue(a.Name, v, a.PossibleValues)
			}
			if a.Validator != nil {
				if err := a.Validator.Validate(v); err != nil {
					return errs.NewInvalidValue(a.Name, v, err)
				}
			}
			if a.BytesValidator != nil {
				if err := a.BytesValidator.ValidateBytes([]byte(v)); err != nil {
					return errs.NewInvalidValue(a.Name, v, err)
				}
			}
		}
	}

	return nil
}

func (s *resolver) matches() *Matches {
	m := newMatches()
	for _, a := range s.reg.Args() {
		if occ, ok := s.explicit[a.Name]; ok {
			ma := &MatchedArg{Occurrences: len(occ), Source: types.Explicit}
			if a.TakesValue() {
				for _, o := range occ {
					for _, v := range splitAll(a, o.Values) {
						ma.Values = append(ma.Values, v)
						ma.Indices = append(ma.Indices, o.Position)
					}
				}
			}
			m.args.Set(a.Name, ma)
			continue
		}
		if vals, ok := s.defaults[a.Name]; ok {
			m.args.Set(a.Name, &MatchedArg{Values: vals, Source: types.Defaulted})
		}
	}
	for _, g := range s.reg.Groups() {
		if s.isPresent(g.Name) {
			m.groups.Set(g.Name, struct{}{})
		}
	}

	return m
}

func (s *resolver) isExplicit(name string) bool {
	_, ok := s.explicit[name]
	return ok
}

// isPresent covers explicit and defaulted arguments and derives group presence
func (s *resolver) isPresent(name string) bool {
	if s.isExplicit(name) {
		return true
	}
	if _, ok := s.defaults[name]; ok {
		return true
	}
	g, ok := s.reg.Group(name)
	if !ok || len(g.Args) == 0 {
		return false
	}
	if g.RequiresAll {
		for _, m := range g.Args {
			if !s.isPresent(m) {
				return false
			}
		}
		return true
	}

	return slices.ContainsFunc(g.Args, s.isPresent)
}

func (s *resolver) values(name string) []string {
	if occ, ok := s.explicit[name]; ok {
		a, _ := s.reg.Arg(name)
		var out []string
		for _, o := range occ {
			out = append(out, splitAll(a, o.Values)...)
		}
		return out
	}

	return s.defaults[name]
}

func (s *resolver) firstValue(name string) (string, bool) {
	vals := s.values(name)
	if len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

func splitAll(a *Argument, raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, split(a, r)...)
	}

	return out
}

func split(a *Argument, raw string) []string {
	if !a.UsesDelimiter() || !strings.ContainsRune(raw, a.Delimiter) {
		return []string{raw}
	}

	return strings.Split(raw, string(a.Delimiter))
}
