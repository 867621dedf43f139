package argspec

import (
	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/parse"
)

// ParseUsage builds an argument from a usage string such as
//
//	-o, --output <FILE>... 'where to write'
//
// extra options are applied after the ones derived from the usage string.
// See parse.ParseUsage for the grammar.
func ParseUsage(usage string, extra ...ConfigureArgumentFunc) (*Argument, error) {
	u, err := parse.ParseUsage(usage)
	if err != nil {
		return nil, errs.NewMalformedUsage(usage, err)
	}

	configs := make([]ConfigureArgumentFunc, 0, len(u.ValueNames)+6)
	if u.Short != 0 {
		configs = append(configs, WithShort(string(u.Short)))
	}
	if u.Long != "" {
		configs = append(configs, WithLong(u.Long))
	}
	if u.Help != "" {
		configs = append(configs, WithHelp(u.Help))
	}
	if u.Required {
		configs = append(configs, WithRequired(true))
	}
	if u.Multiple {
		configs = append(configs, WithMultiple(true))
	}
	for _, v := range u.ValueNames {
		configs = append(configs, WithValueName(v))
	}
	if len(u.ValueNames) > 1 {
		configs = append(configs, WithNumberOfValues(len(u.ValueNames)))
	}

	arg := NewArg(u.Name, configs...)
	if err := arg.Set(extra...); err != nil {
		return nil, err
	}

	return arg, nil
}

// FromUsage is ParseUsage for declarations known at build time. It panics on malformed input.
func FromUsage(usage string, extra ...ConfigureArgumentFunc) *Argument {
	arg, err := ParseUsage(usage, extra...)
	if err != nil {
		panic(err)
	}

	return arg
}
