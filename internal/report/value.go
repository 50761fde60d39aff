package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// asFloat приводит числовое значение к float64. Второй результат false,
// если значение NULL или не числовое.
func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func isNull(v Value) bool {
	return v == nil
}

// truth интерпретирует значение предиката. NULL считается false,
// как в трёхзначной логике WHERE.
func truth(v Value) (bool, error) {
	if v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: predicate yielded %T, want bool", ErrSchemaMismatch, v)
	}
	return b, nil
}

// compareValues сравнивает два не-NULL значения одного семейства типов.
// Возвращает -1, 0 или 1. Числа int64/float64 сравниваются между собой.
func compareValues(a, b Value) (int, error) {
	if fa, ok := asFloat(a); ok {
		fb, okb := asFloat(b)
		if !okb {
			return 0, typeMismatch(a, b)
		}
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, typeMismatch(a, b)
		}
		return strings.Compare(av, bv), nil
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, typeMismatch(a, b)
		}
		if av == bv {
			return 0, nil
		}
		if !av {
			return -1, nil
		}
		return 1, nil
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, typeMismatch(a, b)
		}
		switch {
		case av.Before(bv):
			return -1, nil
		case av.After(bv):
			return 1, nil
		default:
			return 0, nil
		}
	case time.Duration:
		bv, ok := b.(time.Duration)
		if !ok {
			return 0, typeMismatch(a, b)
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, fmt.Errorf("%w: unsupported value type %T", ErrSchemaMismatch, a)
	}
}

func typeMismatch(a, b Value) error {
	return fmt.Errorf("%w: cannot compare %T with %T", ErrSchemaMismatch, a, b)
}

// encodeKey сериализует кортеж значений в строковый ключ группировки.
// Кодирование помечает тип каждого значения, чтобы 1 и "1" не совпали.
func encodeKey(vals []Value) (string, error) {
	var sb strings.Builder
	for _, v := range vals {
		switch t := v.(type) {
		case nil:
			sb.WriteString("n|")
		case int64:
			sb.WriteString("i" + strconv.FormatInt(t, 10) + "|")
		case float64:
			sb.WriteString("f" + strconv.FormatFloat(t, 'g', -1, 64) + "|")
		case string:
			sb.WriteString("s" + strconv.Quote(t) + "|")
		case bool:
			sb.WriteString("b" + strconv.FormatBool(t) + "|")
		case time.Time:
			sb.WriteString("t" + strconv.FormatInt(t.UnixNano(), 10) + "|")
		case time.Duration:
			sb.WriteString("d" + strconv.FormatInt(int64(t), 10) + "|")
		default:
			return "", fmt.Errorf("%w: unsupported group key type %T", ErrSchemaMismatch, v)
		}
	}
	return sb.String(), nil
}
