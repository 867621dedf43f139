package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/argspec/errs"
)

// Usage format, one argument per string:
//
//	[explicit-name] [-s[,]] [--long] [=][value-placeholders...] ['help text']
//
//   - <name> or [name] before any switch is the explicit name; '<' marks the argument required
//   - later bracket pairs are value placeholders; with no explicit name '<' marks it required
//   - '...' after the name, a switch or the last placeholder marks it multiple
//   - ',' and '=' are cosmetic
//   - the first single-quoted run is the help text
//
// Examples:
//
//	-d, --debug... 'turns on debugging'  -> name=debug short=d long=debug multiple
//	--config <FILE> 'configuration'      -> name=config required values=[FILE]
//	<input> 'input file'                 -> name=input required, positional
//	-p [X] [Y]                           -> name=p values=[X Y]

// Usage is the result of scanning one usage string
type Usage struct {
	Name string
	// Explicit is set when Name came from a bracketed name rather than a switch or placeholder
	Explicit   bool
	Short      rune
	Long       string
	ValueNames []string
	Required   bool
	Multiple   bool
	Help       string
}

type usageScanner struct {
	in      string
	pos     int
	u       Usage
	hasHelp bool
	// switched is set once a short or long switch has been read
	switched bool
}

// ParseUsage scans one usage string. Errors are translatable and name the offending offset.
func ParseUsage(input string) (*Usage, error) {
	s := &usageScanner{in: input}
	if err := s.scan(); err != nil {
		return nil, err
	}

	switch {
	case s.u.Name != "":
	case s.u.Long != "":
		s.u.Name = s.u.Long
	case s.u.Short != 0:
		s.u.Name = string(s.u.Short)
	case len(s.u.ValueNames) > 0:
		s.u.Name = s.u.ValueNames[0]
	default:
		return nil, errs.ErrNoName
	}

	return &s.u, nil
}

func (s *usageScanner) scan() error {
	for s.pos < len(s.in) {
		r, size := utf8.DecodeRuneInString(s.in[s.pos:])
		switch {
		case unicode.IsSpace(r) || r == ',' || r == '=':
			s.pos += size
		case r == '\'':
			if err := s.help(); err != nil {
				return err
			}
		case r == '<' || r == '[':
			if err := s.bracket(r); err != nil {
				return err
			}
		case strings.HasPrefix(s.in[s.pos:], "--"):
			if err := s.long(); err != nil {
				return err
			}
		case r == '-':
			if err := s.short(); err != nil {
				return err
			}
		case strings.HasPrefix(s.in[s.pos:], "..."):
			s.u.Multiple = true
			s.pos += 3
		default:
			return errs.ErrUnexpectedToken.WithArgs(s.token(), s.pos)
		}
	}

	return nil
}

func (s *usageScanner) help() error {
	start := s.pos
	end := strings.IndexByte(s.in[start+1:], '\'')
	if end < 0 {
		return errs.ErrUnterminatedQuote.WithArgs(start)
	}
	if s.hasHelp {
		return errs.ErrDuplicateHelp.WithArgs(start)
	}
	s.u.Help = s.in[start+1 : start+1+end]
	s.hasHelp = true
	s.pos = start + end + 2

	return nil
}

func (s *usageScanner) bracket(open rune) error {
	start := s.pos
	closing := byte(']')
	if open == '<' {
		closing = '>'
	}
	end := strings.IndexByte(s.in[start+1:], closing)
	if end < 0 {
		return errs.ErrUnterminatedBracket.WithArgs(start)
	}
	text := s.in[start+1 : start+1+end]
	if strings.TrimSpace(text) == "" {
		return errs.ErrEmptyPlaceholder.WithArgs(start)
	}
	s.pos = start + end + 2
	required := open == '<'

	if !s.switched && !s.u.Explicit && len(s.u.ValueNames) == 0 {
		s.u.Name = text
		s.u.Explicit = true
		s.u.Required = required
		return nil
	}

	s.u.ValueNames = append(s.u.ValueNames, text)
	if required && !s.u.Explicit {
		s.u.Required = true
	}

	return nil
}

func (s *usageScanner) long() error {
	start := s.pos
	s.pos += 2
	name := s.word()
	if name == "" {
		return errs.ErrEmptySwitch.WithArgs(start)
	}
	if s.u.Long != "" {
		return errs.ErrDuplicateSwitchText.WithArgs("--" + name)
	}
	s.u.Long = name
	s.pos += len(name)
	s.switched = true

	return nil
}

func (s *usageScanner) short() error {
	start := s.pos
	s.pos++
	r, size := utf8.DecodeRuneInString(s.in[s.pos:])
	if s.pos >= len(s.in) || !isWordRune(r) {
		return errs.ErrEmptySwitch.WithArgs(start)
	}
	s.pos += size
	if rest := s.word(); rest != "" {
		return errs.ErrInvalidShort.WithArgs("-" + string(r) + rest)
	}
	if s.u.Short != 0 {
		return errs.ErrDuplicateSwitchText.WithArgs("-" + string(r))
	}
	s.u.Short = r
	s.switched = true

	return nil
}

// word returns the run of word characters at the current position without consuming it
func (s *usageScanner) word() string {
	end := s.pos
	for end < len(s.in) {
		r, size := utf8.DecodeRuneInString(s.in[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}

	return s.in[s.pos:end]
}

// token returns everything up to the next space, for error messages
func (s *usageScanner) token() string {
	rest := s.in[s.pos:]
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		return rest[:i]
	}

	return rest
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
