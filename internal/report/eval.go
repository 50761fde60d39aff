package report

import (
	"fmt"
	"sort"
	"time"
)

// Result — упорядоченный результат одного вычисления отчёта.
type Result struct {
	Columns []string
	Rows    []Row
}

// Evaluate вычисляет отчёт над снапшотом. Чистая функция: при одинаковом
// снапшоте, спецификации, asOf и параметрах результат и порядок строк
// побайтово совпадают между запусками. Ошибка любого этапа прерывает отчёт
// целиком, частичных результатов нет.
func Evaluate(spec Spec, ds *Dataset, asOf time.Time, params map[string]Value) (*Result, error) {
	bound := make(map[string]Value, len(params)+len(spec.Bindings))
	for k, v := range params {
		bound[k] = v
	}

	for _, b := range spec.Bindings {
		v, err := evaluateBinding(b, ds, asOf, bound)
		if err != nil {
			return nil, fmt.Errorf("report %q: binding %q: %w", spec.Slug, b.Name, err)
		}
		bound[b.Name] = v
	}

	schema, rows, err := runPipeline(&spec.Pipeline, ds, asOf, bound)
	if err != nil {
		return nil, fmt.Errorf("report %q: %w", spec.Slug, err)
	}

	return &Result{Columns: schema.Columns(), Rows: rows}, nil
}

func evaluateBinding(b Binding, ds *Dataset, asOf time.Time, params map[string]Value) (Value, error) {
	schema, rows, err := runPipeline(&b.Pipeline, ds, asOf, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	i, ok := schema.Lookup(b.Column)
	if !ok {
		return nil, fmt.Errorf("%w: unknown binding column %q", ErrSchemaMismatch, b.Column)
	}
	return rows[0][i], nil
}

func runPipeline(p *Pipeline, ds *Dataset, asOf time.Time, params map[string]Value) (*Schema, []Row, error) {
	schema, rows, err := scan(&p.From, ds, asOf, params)
	if err != nil {
		return nil, nil, err
	}

	for i := range p.Joins {
		schema, rows, err = applyJoin(schema, rows, &p.Joins[i], ds)
		if err != nil {
			return nil, nil, err
		}
	}

	f := &frame{schema: schema, asOf: asOf, params: params}

	if p.Where != nil {
		rows, err = filterRows(f, rows, p.Where)
		if err != nil {
			return nil, nil, fmt.Errorf("where: %w", err)
		}
	}

	if len(p.Derive) > 0 {
		schema, rows, err = applyDerive(f, rows, p.Derive)
		if err != nil {
			return nil, nil, fmt.Errorf("derive: %w", err)
		}
		f = &frame{schema: schema, asOf: asOf, params: params}
	}

	if p.Group != nil {
		schema, rows, err = applyGroupBy(f, rows, p.Group)
		if err != nil {
			return nil, nil, fmt.Errorf("group: %w", err)
		}
		f = &frame{schema: schema, asOf: asOf, params: params}
	}

	if p.Having != nil {
		rows, err = filterRows(f, rows, p.Having)
		if err != nil {
			return nil, nil, fmt.Errorf("having: %w", err)
		}
	}

	for i := range p.Windows {
		schema, rows, err = applyWindow(f, rows, &p.Windows[i])
		if err != nil {
			return nil, nil, fmt.Errorf("window %q: %w", p.Windows[i].Name, err)
		}
		f = &frame{schema: schema, asOf: asOf, params: params}
	}

	if p.PostWhere != nil {
		rows, err = filterRows(f, rows, p.PostWhere)
		if err != nil {
			return nil, nil, fmt.Errorf("post-where: %w", err)
		}
	}

	if len(p.Project) > 0 {
		schema, rows, err = applyProject(f, rows, p.Project)
		if err != nil {
			return nil, nil, fmt.Errorf("project: %w", err)
		}
		f = &frame{schema: schema, asOf: asOf, params: params}
	}

	if len(p.OrderBy) > 0 {
		rows, err = sortRows(f, rows, p.OrderBy)
		if err != nil {
			return nil, nil, fmt.Errorf("order: %w", err)
		}
	}

	if p.Limit > 0 && len(rows) > p.Limit {
		rows = rows[:p.Limit]
	}

	return schema, rows, nil
}

func scan(from *From, ds *Dataset, asOf time.Time, params map[string]Value) (*Schema, []Row, error) {
	if from.Sub != nil {
		return runPipeline(from.Sub, ds, asOf, params)
	}
	t, err := ds.Table(from.Table)
	if err != nil {
		return nil, nil, err
	}
	return t.Schema, t.Rows, nil
}

// applyJoin — хеш-эквисоединение в стиле USING: правые ключевые колонки не
// дублируются. NULL в ключе никогда не матчится; при LEFT JOIN непарная
// левая строка сохраняется с NULL справа.
func applyJoin(left *Schema, rows []Row, j *Join, ds *Dataset) (*Schema, []Row, error) {
	if len(j.On) == 0 {
		return nil, nil, fmt.Errorf("%w: join with table %q has no keys", ErrSpecification, j.Table)
	}

	right, err := ds.Table(j.Table)
	if err != nil {
		return nil, nil, err
	}

	leftKeyIdx := make([]int, len(j.On))
	rightKeyIdx := make([]int, len(j.On))
	rightKeyCols := make(map[int]bool, len(j.On))
	for i, on := range j.On {
		li, ok := left.Lookup(on.Left)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown join column %q", ErrSchemaMismatch, on.Left)
		}
		ri, ok := right.Schema.Lookup(on.Right)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unknown join column %q in table %q", ErrSchemaMismatch, on.Right, j.Table)
		}
		leftKeyIdx[i] = li
		rightKeyIdx[i] = ri
		rightKeyCols[ri] = true
	}

	var rightOutIdx []int
	outCols := left.Columns()
	for i, c := range right.Schema.Columns() {
		if rightKeyCols[i] {
			continue
		}
		outCols = append(outCols, c)
		rightOutIdx = append(rightOutIdx, i)
	}
	outSchema, err := NewSchema(outCols...)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[string][]Row, len(right.Rows))
	for _, rr := range right.Rows {
		key, null, err := joinKey(rr, rightKeyIdx)
		if err != nil {
			return nil, nil, err
		}
		if null {
			continue
		}
		index[key] = append(index[key], rr)
	}

	out := make([]Row, 0, len(rows))
	for _, lr := range rows {
		key, null, err := joinKey(lr, leftKeyIdx)
		if err != nil {
			return nil, nil, err
		}

		var matches []Row
		if !null {
			matches = index[key]
		}

		if len(matches) == 0 {
			if j.Kind == JoinLeft {
				out = append(out, mergeRows(lr, nil, rightOutIdx))
			}
			continue
		}
		for _, rr := range matches {
			out = append(out, mergeRows(lr, rr, rightOutIdx))
		}
	}

	return outSchema, out, nil
}

func joinKey(row Row, idx []int) (key string, hasNull bool, err error) {
	vals := make([]Value, len(idx))
	for i, j := range idx {
		if isNull(row[j]) {
			return "", true, nil
		}
		vals[i] = row[j]
	}
	key, err = encodeKey(vals)
	return key, false, err
}

func mergeRows(left, right Row, rightOutIdx []int) Row {
	out := make(Row, 0, len(left)+len(rightOutIdx))
	out = append(out, left...)
	for _, i := range rightOutIdx {
		if right == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, right[i])
	}
	return out
}

func filterRows(f *frame, rows []Row, pred Expr) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		v, err := pred.eval(f, r)
		if err != nil {
			return nil, err
		}
		keep, err := truth(v)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, r)
		}
	}
	return out, nil
}

// applyDerive добавляет производные колонки по одной: каждое следующее
// выражение видит колонки, выведенные до него, как цепочка шагов CTE.
func applyDerive(f *frame, rows []Row, derive []Derived) (*Schema, []Row, error) {
	schema := f.schema

	out := make([]Row, len(rows))
	for i, r := range rows {
		nr := make(Row, 0, len(r)+len(derive))
		out[i] = append(nr, r...)
	}

	for _, d := range derive {
		step := &frame{schema: schema, asOf: f.asOf, params: f.params}
		for i, r := range out {
			v, err := d.Expr.eval(step, r)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", d.Name, err)
			}
			out[i] = append(r, v)
		}

		next, err := NewSchema(append(schema.Columns(), d.Name)...)
		if err != nil {
			return nil, nil, err
		}
		schema = next
	}

	return schema, out, nil
}

func applyProject(f *frame, rows []Row, project []Projection) (*Schema, []Row, error) {
	cols := make([]string, len(project))
	for i, p := range project {
		cols[i] = p.Name
	}
	schema, err := NewSchema(cols...)
	if err != nil {
		return nil, nil, err
	}

	out := make([]Row, len(rows))
	for i, r := range rows {
		nr := make(Row, len(project))
		for j, p := range project {
			v, err := p.Expr.eval(f, r)
			if err != nil {
				return nil, nil, fmt.Errorf("column %q: %w", p.Name, err)
			}
			nr[j] = v
		}
		out[i] = nr
	}
	return schema, out, nil
}

// sortRows — детерминированная сортировка: стабильная, NULL всегда в конце
// независимо от направления. Разрешение ничьих — забота ключей самой
// спецификации.
func sortRows(f *frame, rows []Row, keys []SortKey) ([]Row, error) {
	decorated := make([]struct {
		row  Row
		keys []Value
	}, len(rows))
	for i, r := range rows {
		vals := make([]Value, len(keys))
		for j, k := range keys {
			v, err := k.Expr.eval(f, r)
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}
		decorated[i].row = r
		decorated[i].keys = vals
	}

	var sortErr error
	sort.SliceStable(decorated, func(a, b int) bool {
		if sortErr != nil {
			return false
		}
		c, err := compareKeyTuples(decorated[a].keys, decorated[b].keys, keys)
		if err != nil {
			sortErr = err
			return false
		}
		return c < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}

	out := make([]Row, len(rows))
	for i := range decorated {
		out[i] = decorated[i].row
	}
	return out, nil
}

func compareKeyTuples(a, b []Value, keys []SortKey) (int, error) {
	for i := range keys {
		av, bv := a[i], b[i]
		switch {
		case isNull(av) && isNull(bv):
			continue
		case isNull(av):
			return 1, nil
		case isNull(bv):
			return -1, nil
		}

		c, err := compareValues(av, bv)
		if err != nil {
			return 0, err
		}
		if c == 0 {
			continue
		}
		if keys[i].Desc {
			return -c, nil
		}
		return c, nil
	}
	return 0, nil
}
