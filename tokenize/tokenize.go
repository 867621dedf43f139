// Package tokenize turns a command line into the raw occurrences consumed by argspec.Resolve.
//
// Supported forms are --long, --long=value, -s, -sVALUE, -s=value, clustered short flags (-abc),
// long aliases and "--" to end option parsing. Tokens which are not switches are assigned to
// positionals by index; a multiple positional in last place takes every remaining one.
package tokenize

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/argspec"
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/parse"
	"github.com/napalu/argspec/types"
	"github.com/rs/zerolog"
)

const endOfOptions = "--"

// Tokenizer splits command lines according to the switches of one compiled Registry.
// A Tokenizer holds no per-call state and can be shared between goroutines.
type Tokenizer struct {
	reg *argspec.Registry
	log zerolog.Logger
}

// New returns a Tokenizer for reg. reg is compiled first and New panics on a configuration error.
func New(reg *argspec.Registry) *Tokenizer {
	reg.MustCompile()

	return &Tokenizer{
		reg: reg,
		log: reg.Logger().With().Str("component", "tokenize").Logger(),
	}
}

// Registry returns the registry the tokenizer reads switches from
func (t *Tokenizer) Registry() *argspec.Registry {
	return t.reg
}

// Tokenize assigns every token of args to an argument. Positions are indices into args.
func (t *Tokenizer) Tokenize(args []string) (argspec.RawOccurrences, error) {
	run := &tokenizing{
		Tokenizer:   t,
		state:       parse.NewState(args),
		raw:         argspec.RawOccurrences{},
		positionals: t.reg.Positionals(),
	}
	if err := run.tokenize(); err != nil {
		t.log.Debug().Err(err).Strs("args", args).Msg("tokenize failed")
		return nil, err
	}
	t.log.Trace().Int("tokens", len(args)).Int("args", len(run.raw)).Msg("tokenized")

	return run.raw, nil
}

// TokenizeString splits line with POSIX shell quoting rules and tokenizes the result
func (t *Tokenizer) TokenizeString(line string) (argspec.RawOccurrences, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return t.Tokenize(args)
}

// Parse tokenizes args and resolves the result against the registry
func (t *Tokenizer) Parse(args []string) (*argspec.Matches, error) {
	raw, err := t.Tokenize(args)
	if err != nil {
		return nil, err
	}

	return t.reg.Resolve(raw)
}

// ParseString is Parse for a shell-quoted command line
func (t *Tokenizer) ParseString(line string) (*argspec.Matches, error) {
	raw, err := t.TokenizeString(line)
	if err != nil {
		return nil, err
	}

	return t.reg.Resolve(raw)
}

type tokenizing struct {
	*Tokenizer
	state       parse.State
	raw         argspec.RawOccurrences
	positionals []*argspec.Argument
	nextPos     int
}

func (r *tokenizing) tokenize() error {
	for r.state.Advance() {
		tok := r.state.CurrentArg()
		var err error
		switch {
		case tok == endOfOptions:
			err = r.rest()
		case strings.HasPrefix(tok, "--"):
			err = r.long(tok)
		case isSwitch(tok):
			err = r.short(tok)
		default:
			err = r.positional(tok, r.state.Pos())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *tokenizing) long(tok string) error {
	pos := r.state.Pos()
	name, value, hasValue := strings.Cut(tok[2:], "=")
	a, ok := r.reg.ByLong(name)
	if !ok {
		return errs.NewUnknownSwitch(tok)
	}
	if !a.TakesValue() {
		if hasValue {
			return errs.NewUnexpectedValues(a.Name, value)
		}
		r.raw.Add(a.Name, pos)
		return nil
	}
	if hasValue {
		return r.consume(a, pos, []string{value})
	}

	return r.consume(a, pos, nil)
}

func (r *tokenizing) short(tok string) error {
	pos := r.state.Pos()
	cluster := tok[1:]
	for cluster != "" {
		c, size := utf8.DecodeRuneInString(cluster)
		cluster = cluster[size:]
		a, ok := r.reg.ByShort(c)
		if !ok {
			return errs.NewUnknownSwitch("-" + string(c))
		}
		if !a.TakesValue() {
			if strings.HasPrefix(cluster, "=") {
				return errs.NewUnexpectedValues(a.Name, cluster[1:])
			}
			r.raw.Add(a.Name, pos)
			continue
		}
		// the rest of the cluster is the first value
		attached := strings.TrimPrefix(cluster, "=")
		if cluster == "" {
			return r.consume(a, pos, nil)
		}
		return r.consume(a, pos, []string{attached})
	}

	return nil
}

// consume reads values for a from the following tokens, starting from the ones attached to the switch
func (r *tokenizing) consume(a *argspec.Argument, pos int, values []string) error {
	limit := valueLimit(a)
	count := 0
	for _, v := range values {
		count += valueCount(a, v)
	}

	for !a.Is(types.RequireDelimiter) || len(values) == 0 {
		if !r.state.HasNext() {
			break
		}
		next := r.state.Peek()
		if a.Terminator != "" && next == a.Terminator {
			r.state.Advance()
			break
		}
		if limit > 0 && count >= limit {
			break
		}
		if next == endOfOptions || (isSwitch(next) && !a.Is(types.AllowHyphenValues)) {
			break
		}
		r.state.Advance()
		values = append(values, next)
		count += valueCount(a, next)
	}

	if len(values) == 0 {
		return errs.NewMissingValue(a.Name)
	}
	r.raw.Add(a.Name, pos, values...)

	return nil
}

// rest assigns every token after "--" to positionals
func (r *tokenizing) rest() error {
	first := r.state.Pos() + 1
	for i, tok := range r.state.Remaining() {
		if err := r.positional(tok, first+i); err != nil {
			return err
		}
	}
	r.state.SetPos(r.state.Len() - 1)

	return nil
}

func (r *tokenizing) positional(tok string, pos int) error {
	if r.nextPos >= len(r.positionals) {
		last := len(r.positionals) - 1
		if last >= 0 && r.positionals[last].IsMultiple() {
			// the trailing multiple positional keeps absorbing into its single occurrence
			name := r.positionals[last].Name
			occ := r.raw[name]
			occ[len(occ)-1].Values = append(occ[len(occ)-1].Values, tok)
			return nil
		}
		return errs.NewUnexpectedPositional(tok)
	}

	a := r.positionals[r.nextPos]
	r.nextPos++
	r.raw.Add(a.Name, pos, tok)

	return nil
}

// valueLimit is the most values one occurrence may take, 0 for no limit
func valueLimit(a *argspec.Argument) int {
	switch {
	case a.Is(types.RequireDelimiter):
		return 0
	case a.EffectiveNumValues() > 0:
		return a.EffectiveNumValues()
	case a.MaxValues > 0:
		return a.MaxValues
	case a.IsMultiple() || a.MinValues > 1:
		return 0
	}

	return 1
}

func valueCount(a *argspec.Argument, token string) int {
	if !a.UsesDelimiter() {
		return 1
	}

	return strings.Count(token, string(a.Delimiter)) + 1
}

func isSwitch(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}
