package argspec

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flag(name string, configs ...ConfigureArgumentFunc) *Argument {
	return NewArg(name, append([]ConfigureArgumentFunc{WithLong(name)}, configs...)...)
}

func opt(name string, configs ...ConfigureArgumentFunc) *Argument {
	return NewArg(name, append([]ConfigureArgumentFunc{WithLong(name), WithTakesValue(true)}, configs...)...)
}

func assertKind(t *testing.T, err error, kind errs.Kind, args ...string) {
	t.Helper()
	require.Error(t, err)
	var re *errs.ResolutionError
	require.True(t, errors.As(err, &re), "expected a ResolutionError, got %T: %v", err, err)
	assert.Equal(t, kind, re.Kind, err.Error())
	if len(args) > 0 {
		assert.Equal(t, args, re.Args)
	}
}

func TestResolve_Conflicts(t *testing.T) {
	args := []*Argument{flag("a", WithConflictsWith("b")), flag("b"), flag("c")}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1))
	assertKind(t, err, errs.ArgumentConflict, "a", "b")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("b", 0).Add("a", 1))
	assertKind(t, err, errs.ArgumentConflict, "a", "b")

	m, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("c", 1))
	require.NoError(t, err)
	assert.True(t, m.IsPresent("a"))
}

func TestResolve_ConflictDeclarationOrder(t *testing.T) {
	args := []*Argument{
		flag("x", WithConflictsWith("z", "y")),
		flag("y"),
		flag("z"),
	}
	_, err := Resolve(args, nil, RawOccurrences{}.Add("x", 0).Add("y", 1).Add("z", 2))
	assertKind(t, err, errs.ArgumentConflict, "x", "z")
}

func TestResolve_OverrideLastWins(t *testing.T) {
	args := []*Argument{
		flag("a", WithConflictsWith("b")),
		flag("b", WithOverridesWith("a")),
	}

	// a then b then a: a's latest occurrence is later, b is dropped
	m, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1).Add("a", 2))
	require.NoError(t, err)
	assert.True(t, m.IsPresent("a"))
	assert.False(t, m.IsPresent("b"))
	assert.Equal(t, 2, m.Occurrences("a"))

	// a then b: b wins
	m, err = Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1))
	require.NoError(t, err)
	assert.False(t, m.IsPresent("a"))
	assert.True(t, m.IsPresent("b"))
}

func TestResolve_OverrideTieKeepsDeclarer(t *testing.T) {
	args := []*Argument{opt("a"), opt("b", WithOverridesWith("a"))}
	m, err := Resolve(args, nil, RawOccurrences{}.Add("a", 3, "x").Add("b", 3, "y"))
	require.NoError(t, err)
	assert.False(t, m.IsPresent("a"))
	assert.True(t, m.IsPresent("b"))
}

func TestResolve_DroppedNotReAdded(t *testing.T) {
	args := []*Argument{
		opt("a", WithDefaultValue("d"), WithRequired(true)),
		flag("b", WithOverridesWith("a")),
	}
	_, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0, "x").Add("b", 1))
	assertKind(t, err, errs.MissingRequiredArgument, "a")
}

func TestResolve_SelfOverride(t *testing.T) {
	args := []*Argument{opt("level", WithOverridesWith("level"))}
	m, err := Resolve(args, nil, RawOccurrences{}.Add("level", 0, "1").Add("level", 2, "2").Add("level", 4, "3"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, m.Values("level"))
	assert.Equal(t, 1, m.Occurrences("level"))
	assert.Equal(t, []int{4}, m.Indices("level"))
}

func TestResolve_RequiredUnless(t *testing.T) {
	args := []*Argument{opt("cfg", WithRequiredUnless("x")), flag("x")}

	_, err := Resolve(args, nil, RawOccurrences{})
	assertKind(t, err, errs.MissingRequiredArgument, "cfg")

	m, err := Resolve(args, nil, RawOccurrences{}.Add("x", 0))
	require.NoError(t, err)
	assert.False(t, m.IsPresent("cfg"))
}

func TestResolve_RequiredUnlessAll(t *testing.T) {
	args := []*Argument{opt("cfg", WithRequiredUnlessAll("x", "y")), flag("x"), flag("y")}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("x", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "cfg")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("x", 0).Add("y", 1))
	require.NoError(t, err)
}

func TestResolve_RequiredUnlessOne(t *testing.T) {
	args := []*Argument{opt("cfg", WithRequiredUnlessOne("x", "y")), flag("x"), flag("y")}
	_, err := Resolve(args, nil, RawOccurrences{}.Add("y", 0))
	require.NoError(t, err)
}

func TestResolve_RequiredIf(t *testing.T) {
	args := []*Argument{
		opt("out", WithRequiredIf("mode", "file")),
		opt("mode"),
	}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("mode", 0, "file"))
	assertKind(t, err, errs.MissingRequiredArgument, "out")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("mode", 0, "stdout"))
	require.NoError(t, err)
}

func TestResolve_Requires(t *testing.T) {
	args := []*Argument{
		flag("a", WithRequires("b")),
		flag("b", WithRequires("c")),
		flag("c"),
	}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "b")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1))
	assertKind(t, err, errs.MissingRequiredArgument, "c")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1).Add("c", 2))
	require.NoError(t, err)
}

func TestResolve_RequiresIf(t *testing.T) {
	args := []*Argument{
		opt("fmt", WithRequiresIf("csv", "sep")),
		opt("sep"),
	}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("fmt", 0, "csv"))
	assertKind(t, err, errs.MissingRequiredArgument, "sep")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("fmt", 0, "json"))
	require.NoError(t, err)
}

func TestResolve_RequiresCycle(t *testing.T) {
	args := []*Argument{flag("a", WithRequires("b")), flag("b", WithRequires("a"))}
	_, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0).Add("b", 1))
	require.NoError(t, err)
}

func TestResolve_RequiresThroughDefault(t *testing.T) {
	args := []*Argument{
		opt("mode", WithDefaultValue("net"), WithRequiresIf("net", "host")),
		opt("host"),
	}

	_, err := Resolve(args, nil, RawOccurrences{})
	assertKind(t, err, errs.MissingRequiredArgument, "host")

	m, err := Resolve(args, nil, RawOccurrences{}.Add("mode", 0, "local"))
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, m.Values("mode"))
}

func TestResolve_RequiredSatisfiedByDefault(t *testing.T) {
	args := []*Argument{opt("level", WithRequired(true), WithDefaultValue("info"))}
	m, err := Resolve(args, nil, RawOccurrences{})
	require.NoError(t, err)

	v, ok := m.Value("level")
	require.True(t, ok)
	assert.Equal(t, "info", v)
	src, _ := m.Source("level")
	assert.Equal(t, types.Defaulted, src)
	assert.Equal(t, 0, m.Occurrences("level"))
}

func TestResolve_DefaultValueIfOrder(t *testing.T) {
	args := []*Argument{
		flag("x"),
		opt("y"),
		opt("out",
			WithDefaultValueIfPresent("x", "from-x"),
			WithDefaultValueIf("y", "1", "from-y"),
			WithDefaultValue("plain"),
		),
	}

	tests := []struct {
		name string
		raw  RawOccurrences
		want string
	}{
		{"both match, first declared wins", RawOccurrences{}.Add("x", 0).Add("y", 1, "1"), "from-x"},
		{"second matches", RawOccurrences{}.Add("y", 0, "1"), "from-y"},
		{"value mismatch falls back", RawOccurrences{}.Add("y", 0, "2"), "plain"},
		{"nothing", RawOccurrences{}, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Resolve(args, nil, tt.raw)
			require.NoError(t, err)
			v, _ := m.Value("out")
			assert.Equal(t, tt.want, v)
		})
	}

	m, err := Resolve(args, nil, RawOccurrences{}.Add("out", 0, "mine").Add("x", 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, m.Values("out"))
}

func TestResolve_DefaultTriggeredByEarlierDefault(t *testing.T) {
	args := []*Argument{
		opt("env", WithDefaultValue("prod")),
		opt("replicas", WithDefaultValueIf("env", "prod", "3")),
	}
	m, err := Resolve(args, nil, RawOccurrences{})
	require.NoError(t, err)
	v, _ := m.Value("replicas")
	assert.Equal(t, "3", v)
}

func TestResolve_DefaultIsSplit(t *testing.T) {
	args := []*Argument{opt("tags", WithValueDelimiter(';'), WithDefaultValue("a;b"))}
	m, err := Resolve(args, nil, RawOccurrences{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Values("tags"))
}

func TestResolve_Delimiter(t *testing.T) {
	withDelim := []*Argument{opt("list", WithValueDelimiter(';'))}
	m, err := Resolve(withDelim, nil, RawOccurrences{}.Add("list", 0, "a;b;c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Values("list"))
	assert.Equal(t, []int{0, 0, 0}, m.Indices("list"))

	without := []*Argument{opt("list")}
	m, err = Resolve(without, nil, RawOccurrences{}.Add("list", 0, "a;b;c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a;b;c"}, m.Values("list"))
}

func TestResolve_ValuesAcrossOccurrences(t *testing.T) {
	args := []*Argument{opt("i", WithMultiple(true), WithUseDelimiter(true))}
	m, err := Resolve(args, nil, RawOccurrences{}.Add("i", 0, "a,b").Add("i", 2, "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Values("i"))
	assert.Equal(t, []int{0, 0, 2}, m.Indices("i"))
	assert.Equal(t, 2, m.Occurrences("i"))
}

func TestResolve_NumberOfValues(t *testing.T) {
	args := []*Argument{opt("pt", WithNumberOfValues(2))}

	for n, ok := range map[int]bool{1: false, 2: true, 3: false} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			values := make([]string, n)
			for i := range values {
				values[i] = fmt.Sprint(i)
			}
			_, err := Resolve(args, nil, RawOccurrences{}.Add("pt", 0, values...))
			if ok {
				require.NoError(t, err)
				return
			}
			assertKind(t, err, errs.WrongNumberOfValues, "pt")
		})
	}
}

func TestResolve_NumberOfValuesMultiple(t *testing.T) {
	args := []*Argument{opt("pt", WithNumberOfValues(2), WithMultiple(true))}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("pt", 0, "1", "2").Add("pt", 3, "3", "4"))
	require.NoError(t, err)

	_, err = Resolve(args, nil, RawOccurrences{}.Add("pt", 0, "1", "2").Add("pt", 3, "3"))
	assertKind(t, err, errs.WrongNumberOfValues)
}

func TestResolve_ValueNamesImplyCount(t *testing.T) {
	args := []*Argument{opt("size", WithValueNames("W", "H"))}

	m, err := Resolve(args, nil, RawOccurrences{}.Add("size", 0, "3,4"))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, m.Values("size"))

	_, err = Resolve(args, nil, RawOccurrences{}.Add("size", 0, "3"))
	assertKind(t, err, errs.WrongNumberOfValues)
}

func TestResolve_MinMax(t *testing.T) {
	args := []*Argument{opt("f", WithMinValues(2), WithMaxValues(3))}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("f", 0, "a"))
	assertKind(t, err, errs.TooFewValues, "f")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("f", 0, "a", "b", "c", "d"))
	assertKind(t, err, errs.TooManyValues, "f")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("f", 0, "a", "b"))
	require.NoError(t, err)
}

func TestResolve_CardinalityIgnoresDefaults(t *testing.T) {
	args := []*Argument{opt("f", WithMinValues(2), WithDefaultValue("one"))}
	m, err := Resolve(args, nil, RawOccurrences{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, m.Values("f"))
}

func TestResolve_PossibleValues(t *testing.T) {
	args := []*Argument{opt("mode", WithPossibleValues("fast", "safe"))}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("mode", 0, "fast"))
	require.NoError(t, err)

	_, err = Resolve(args, nil, RawOccurrences{}.Add("mode", 0, "slow"))
	assertKind(t, err, errs.InvalidValue, "mode")
	assert.ErrorIs(t, err, errs.ErrNotPossibleValue)
	var re *errs.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []string{"slow"}, re.Values)
}

func TestResolve_Validator(t *testing.T) {
	even := ValidatorFunc(func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n%2 != 0 {
			return errors.New("must be an even number")
		}
		return nil
	})
	args := []*Argument{opt("n", WithValidator(even), WithMultiple(true))}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("n", 0, "2", "4"))
	require.NoError(t, err)

	_, err = Resolve(args, nil, RawOccurrences{}.Add("n", 0, "2", "3"))
	assertKind(t, err, errs.InvalidValue, "n")
	var re *errs.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "must be an even number", re.Detail)
	assert.Equal(t, []string{"3"}, re.Values)
}

func TestResolve_BytesValidator(t *testing.T) {
	calls := 0
	text := ValidatorFunc(func(string) error { calls++; return nil })
	noNul := BytesValidatorFunc(func(b []byte) error {
		for _, c := range b {
			if c == 0 {
				return errors.New("contains NUL")
			}
		}
		return nil
	})
	args := []*Argument{opt("s", WithValidator(text), WithBytesValidator(noNul))}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("s", 0, "a\x00b"))
	assertKind(t, err, errs.InvalidValue)
	assert.Equal(t, 1, calls, "both validators run")
}

func TestResolve_EmptyValue(t *testing.T) {
	allowed := []*Argument{opt("s")}
	_, err := Resolve(allowed, nil, RawOccurrences{}.Add("s", 0, ""))
	require.NoError(t, err)

	rejected := []*Argument{opt("s", WithEmptyValues(false))}
	_, err = Resolve(rejected, nil, RawOccurrences{}.Add("s", 0, ""))
	assertKind(t, err, errs.EmptyValue, "s")

	positional := []*Argument{NewArg("p", WithEmptyValues(false), WithUseDelimiter(false))}
	_, err = Resolve(positional, nil, RawOccurrences{}.Add("p", 0, ""))
	assertKind(t, err, errs.EmptyValue, "p")
}

func TestResolve_Groups(t *testing.T) {
	args := []*Argument{flag("fast", WithGroups("mode")), flag("safe", WithGroups("mode")), flag("other")}
	groups := []*Group{NewGroup("mode", WithGroupRequired(true))}

	_, err := Resolve(args, groups, RawOccurrences{}.Add("other", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "mode")

	m, err := Resolve(args, groups, RawOccurrences{}.Add("safe", 0))
	require.NoError(t, err)
	assert.True(t, m.IsGroupPresent("mode"))
	assert.Equal(t, []string{"mode"}, m.Groups())
}

func TestResolve_GroupAllMembers(t *testing.T) {
	args := []*Argument{flag("user"), flag("pass"), flag("anon", WithRequiredUnless("creds"))}
	groups := []*Group{NewGroup("creds", WithMembers("user", "pass"), WithAllMembers(true))}

	_, err := Resolve(args, groups, RawOccurrences{}.Add("user", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "anon")

	m, err := Resolve(args, groups, RawOccurrences{}.Add("user", 0).Add("pass", 1))
	require.NoError(t, err)
	assert.True(t, m.IsGroupPresent("creds"))
}

func TestResolve_RequiresGroup(t *testing.T) {
	args := []*Argument{flag("out", WithRequires("fmt")), flag("json"), flag("yaml")}
	groups := []*Group{NewGroup("fmt", WithMembers("json", "yaml"))}

	_, err := Resolve(args, groups, RawOccurrences{}.Add("out", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "fmt")

	_, err = Resolve(args, groups, RawOccurrences{}.Add("out", 0).Add("yaml", 1))
	require.NoError(t, err)
}

func TestResolve_ConflictsWithGroup(t *testing.T) {
	args := []*Argument{
		flag("json", WithGroups("fmt"), WithConflictsWith("fmt")),
		flag("yaml", WithGroups("fmt")),
		flag("raw", WithConflictsWith("fmt")),
	}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("json", 0))
	require.NoError(t, err, "a member never conflicts with itself")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("json", 0).Add("yaml", 1))
	assertKind(t, err, errs.ArgumentConflict, "json", "yaml")

	_, err = Resolve(args, nil, RawOccurrences{}.Add("raw", 0).Add("yaml", 1))
	assertKind(t, err, errs.ArgumentConflict, "raw", "yaml")
}

func TestResolve_GroupRules(t *testing.T) {
	args := []*Argument{flag("a"), flag("b"), flag("c"), flag("d")}
	groups := []*Group{NewGroup("ab", WithMembers("a", "b"), WithGroupRequires("c"), WithGroupConflicts("d"))}

	_, err := Resolve(args, groups, RawOccurrences{}.Add("a", 0))
	assertKind(t, err, errs.MissingRequiredArgument, "c")

	_, err = Resolve(args, groups, RawOccurrences{}.Add("b", 0).Add("c", 1).Add("d", 2))
	assertKind(t, err, errs.ArgumentConflict, "ab", "d")

	_, err = Resolve(args, groups, RawOccurrences{}.Add("b", 0).Add("c", 1))
	require.NoError(t, err)
}

func TestResolve_PassOrder(t *testing.T) {
	// a conflict is reported before a missing argument, which is reported before a bad value
	args := []*Argument{
		opt("a", WithConflictsWith("b"), WithPossibleValues("ok")),
		flag("b"),
		opt("c", WithRequired(true)),
	}

	_, err := Resolve(args, nil, RawOccurrences{}.Add("a", 0, "bad").Add("b", 1))
	assertKind(t, err, errs.ArgumentConflict)

	_, err = Resolve(args, nil, RawOccurrences{}.Add("a", 0, "bad"))
	assertKind(t, err, errs.MissingRequiredArgument)

	_, err = Resolve(args, nil, RawOccurrences{}.Add("a", 0, "bad").Add("c", 1, "x"))
	assertKind(t, err, errs.InvalidValue)
}

func TestResolve_UnknownOccurrence(t *testing.T) {
	_, err := Resolve([]*Argument{flag("a")}, nil, RawOccurrences{}.Add("zzz", 0))
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
	assert.ErrorIs(t, err, errs.ErrUnknownOccurrence)
}

func TestResolve_FlagsCarryNoValues(t *testing.T) {
	m, err := Resolve([]*Argument{flag("v", WithMultiple(true))}, nil,
		RawOccurrences{}.Add("v", 0).Add("v", 1).Add("v", 2))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Occurrences("v"))
	assert.Empty(t, m.Values("v"))
	_, ok := m.Value("v")
	assert.False(t, ok)
}

func TestResolve_Deterministic(t *testing.T) {
	args := []*Argument{
		flag("a", WithConflictsWith("b", "c")),
		flag("b", WithConflictsWith("c")),
		flag("c"),
	}
	raw := RawOccurrences{}.Add("c", 0).Add("b", 1).Add("a", 2)
	for i := 0; i < 20; i++ {
		_, err := Resolve(args, nil, raw)
		assertKind(t, err, errs.ArgumentConflict, "a", "b")
	}
}

func TestResolve_PositionalsAndArgsOrder(t *testing.T) {
	args := []*Argument{NewArg("src"), NewArg("dst", WithRequired(true)), flag("force")}
	m, err := Resolve(args, nil, RawOccurrences{}.Add("force", 0).Add("dst", 2, "b").Add("src", 1, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "dst", "force"}, m.Args())
}
