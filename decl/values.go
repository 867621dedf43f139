package decl

import (
	"fmt"
	"math"
)

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}

	return "", fmt.Errorf("expected a string, got %T", v)
}

// toStrings accepts a single string or a list of strings
func toStrings(v any) ([]string, error) {
	switch s := v.(type) {
	case string:
		return []string{s}, nil
	case []string:
		return s, nil
	case []any:
		out := make([]string, len(s))
		for i, e := range s {
			str, err := toString(e)
			if err != nil {
				return nil, err
			}
			out[i] = str
		}
		return out, nil
	}

	return nil, fmt.Errorf("expected a string or a list of strings, got %T", v)
}

func toBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("expected a boolean, got %T", v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	}

	return 0, fmt.Errorf("expected an integer, got %T", v)
}

// toTuples accepts one tuple of n scalars or a list of such tuples. Null elements stay nil.
func toTuples(v any, n int) ([][]*string, error) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("expected a list of %d-tuples, got %T", n, v)
	}
	if _, nested := list[0].([]any); !nested {
		t, err := toTuple(list, n)
		if err != nil {
			return nil, err
		}
		return [][]*string{t}, nil
	}

	out := make([][]*string, 0, len(list))
	for _, e := range list {
		inner, ok := e.([]any)
		if !ok {
			return nil, fmt.Errorf("expected a %d-tuple, got %T", n, e)
		}
		t, err := toTuple(inner, n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func toTuple(list []any, n int) ([]*string, error) {
	if len(list) != n {
		return nil, fmt.Errorf("expected %d elements, got %d", n, len(list))
	}
	t := make([]*string, n)
	for i, e := range list {
		if e == nil {
			continue
		}
		s, err := toString(e)
		if err != nil {
			return nil, err
		}
		t[i] = &s
	}

	return t, nil
}
