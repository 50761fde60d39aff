package report

import "fmt"

// applyWindow — двухпроходный оконный расчёт: строки разбиваются на разделы
// по ключу (порядок разделов — порядок первого вхождения), внутри раздела
// стабильно сортируются по OrderBy, затем значение присваивается одним
// прямым проходом. Результирующие строки идут в порядке раздел-за-разделом;
// финальный OrderBy конвейера задаёт итоговый порядок.
func applyWindow(f *frame, rows []Row, w *Window) (*Schema, []Row, error) {
	if len(w.OrderBy) == 0 {
		return nil, nil, fmt.Errorf("%w: window function requires an order clause", ErrSpecification)
	}
	if w.Fn == WinLag && w.Arg == nil {
		return nil, nil, fmt.Errorf("%w: lag requires an argument", ErrSpecification)
	}

	cols := append(f.schema.Columns(), w.Name)
	schema, err := NewSchema(cols...)
	if err != nil {
		return nil, nil, err
	}

	partitions, err := partitionRows(f, rows, w.PartitionBy)
	if err != nil {
		return nil, nil, err
	}

	out := make([]Row, 0, len(rows))
	for _, part := range partitions {
		sorted, err := sortRows(f, part, w.OrderBy)
		if err != nil {
			return nil, nil, err
		}

		vals, err := windowValues(f, sorted, w)
		if err != nil {
			return nil, nil, err
		}

		for i, r := range sorted {
			nr := make(Row, 0, len(r)+1)
			nr = append(nr, r...)
			nr = append(nr, vals[i])
			out = append(out, nr)
		}
	}
	return schema, out, nil
}

func partitionRows(f *frame, rows []Row, partitionBy []Expr) ([][]Row, error) {
	if len(partitionBy) == 0 {
		return [][]Row{rows}, nil
	}

	groups := make(map[string][]Row)
	var order []string
	for _, r := range rows {
		vals := make([]Value, len(partitionBy))
		for i, e := range partitionBy {
			v, err := e.eval(f, r)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		key, err := encodeKey(vals)
		if err != nil {
			return nil, err
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	out := make([][]Row, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}
	return out, nil
}

func windowValues(f *frame, sorted []Row, w *Window) ([]Value, error) {
	switch w.Fn {
	case WinRank, WinDenseRank:
		return rankValues(f, sorted, w)
	default:
		return lagValues(f, sorted, w.Arg)
	}
}

// rankValues — RANK со стандартными пропусками после ничьих (1,1,3);
// DENSE_RANK без пропусков. Ничья — равенство кортежа ключей OrderBy.
func rankValues(f *frame, sorted []Row, w *Window) ([]Value, error) {
	out := make([]Value, len(sorted))
	if len(sorted) == 0 {
		return out, nil
	}

	prev, err := orderKeyTuple(f, sorted[0], w.OrderBy)
	if err != nil {
		return nil, err
	}
	rank := int64(1)
	out[0] = rank

	for i := 1; i < len(sorted); i++ {
		cur, err := orderKeyTuple(f, sorted[i], w.OrderBy)
		if err != nil {
			return nil, err
		}
		c, err := compareKeyTuples(prev, cur, w.OrderBy)
		if err != nil {
			return nil, err
		}
		if c != 0 {
			if w.Fn == WinDenseRank {
				rank++
			} else {
				rank = int64(i + 1)
			}
		}
		out[i] = rank
		prev = cur
	}
	return out, nil
}

// lagValues — LAG со смещением 1: первая строка раздела получает NULL,
// каждая следующая — значение аргумента предыдущей строки.
func lagValues(f *frame, sorted []Row, arg Expr) ([]Value, error) {
	out := make([]Value, len(sorted))
	for i := range sorted {
		if i == 0 {
			out[i] = nil
			continue
		}
		v, err := arg.eval(f, sorted[i-1])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func orderKeyTuple(f *frame, row Row, keys []SortKey) ([]Value, error) {
	vals := make([]Value, len(keys))
	for i, k := range keys {
		v, err := k.Expr.eval(f, row)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
