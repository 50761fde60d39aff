package report

import "fmt"

// applyGroupBy — группировка за один проход с аккумуляторами на группу.
// Без ключей группировки результат — ровно одна группа, даже над пустым
// входом (семантика глобального агрегата).
func applyGroupBy(f *frame, rows []Row, g *GroupBy) (*Schema, []Row, error) {
	cols := make([]string, 0, len(g.Keys)+len(g.Aggs))
	for _, k := range g.Keys {
		cols = append(cols, k.Name)
	}
	for _, a := range g.Aggs {
		cols = append(cols, a.Name)
	}
	schema, err := NewSchema(cols...)
	if err != nil {
		return nil, nil, err
	}

	type group struct {
		keyVals []Value
		accs    []*aggAccumulator
	}

	newGroup := func(keyVals []Value) *group {
		accs := make([]*aggAccumulator, len(g.Aggs))
		for i := range g.Aggs {
			accs[i] = &aggAccumulator{fn: g.Aggs[i].Fn}
		}
		return &group{keyVals: keyVals, accs: accs}
	}

	groups := make(map[string]*group)
	var order []string

	if len(g.Keys) == 0 {
		groups[""] = newGroup(nil)
		order = append(order, "")
	}

	for _, r := range rows {
		keyVals := make([]Value, len(g.Keys))
		for i, k := range g.Keys {
			v, err := k.Expr.eval(f, r)
			if err != nil {
				return nil, nil, fmt.Errorf("key %q: %w", k.Name, err)
			}
			keyVals[i] = v
		}
		key, err := encodeKey(keyVals)
		if err != nil {
			return nil, nil, err
		}

		grp, ok := groups[key]
		if !ok {
			grp = newGroup(keyVals)
			groups[key] = grp
			order = append(order, key)
		}

		for i := range g.Aggs {
			if err := grp.accs[i].feed(f, r, &g.Aggs[i]); err != nil {
				return nil, nil, fmt.Errorf("aggregate %q: %w", g.Aggs[i].Name, err)
			}
		}
	}

	out := make([]Row, 0, len(order))
	for _, key := range order {
		grp := groups[key]
		row := make(Row, 0, schema.Len())
		row = append(row, grp.keyVals...)
		for _, acc := range grp.accs {
			row = append(row, acc.result())
		}
		out = append(out, row)
	}
	return schema, out, nil
}

// aggAccumulator накапливает одно агрегатное значение. NULL-аргументы
// пропускаются; SUM без единого не-NULL значения даёт NULL, COUNT — ноль.
type aggAccumulator struct {
	fn       AggFn
	count    int64
	sum      float64
	sawValue bool
	sawFloat bool
	extreme  Value
}

func (a *aggAccumulator) feed(f *frame, row Row, agg *Aggregate) error {
	switch a.fn {
	case AggCount:
		a.count++
		return nil
	case AggCountIf:
		if agg.Cond == nil {
			return fmt.Errorf("%w: conditional count without condition", ErrSpecification)
		}
		v, err := agg.Cond.eval(f, row)
		if err != nil {
			return err
		}
		match, err := truth(v)
		if err != nil {
			return err
		}
		if match {
			a.count++
		}
		return nil
	}

	if agg.Arg == nil {
		return fmt.Errorf("%w: aggregate without argument", ErrSpecification)
	}
	v, err := agg.Arg.eval(f, row)
	if err != nil {
		return err
	}
	if isNull(v) {
		return nil
	}

	switch a.fn {
	case AggSum, AggAvg:
		n, ok := asFloat(v)
		if !ok {
			return fmt.Errorf("%w: numeric aggregate over %T", ErrSchemaMismatch, v)
		}
		if _, isInt := v.(int64); !isInt {
			a.sawFloat = true
		}
		a.sum += n
		a.count++
		a.sawValue = true
	case AggMin, AggMax:
		if !a.sawValue {
			a.extreme = v
			a.sawValue = true
			return nil
		}
		c, err := compareValues(v, a.extreme)
		if err != nil {
			return err
		}
		if (a.fn == AggMin && c < 0) || (a.fn == AggMax && c > 0) {
			a.extreme = v
		}
	}
	return nil
}

func (a *aggAccumulator) result() Value {
	switch a.fn {
	case AggCount, AggCountIf:
		return a.count
	case AggSum:
		if !a.sawValue {
			return nil
		}
		if !a.sawFloat {
			return int64(a.sum)
		}
		return a.sum
	case AggAvg:
		if a.count == 0 {
			return nil
		}
		return a.sum / float64(a.count)
	default:
		if !a.sawValue {
			return nil
		}
		return a.extreme
	}
}
