package report

import "fmt"

// Value — динамически типизированное значение ячейки. nil означает NULL.
// Поддерживаемые конкретные типы: int64, float64, string, bool,
// time.Time, time.Duration.
type Value = any

// Schema — упорядоченный список имён колонок с индексом для поиска.
type Schema struct {
	cols  []string
	index map[string]int
}

func NewSchema(cols ...string) (*Schema, error) {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := index[c]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrSchemaMismatch, c)
		}
		index[c] = i
	}
	return &Schema{cols: cols, index: index}, nil
}

func (s *Schema) Columns() []string {
	out := make([]string, len(s.cols))
	copy(out, s.cols)
	return out
}

func (s *Schema) Len() int {
	return len(s.cols)
}

func (s *Schema) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Row — значения одной строки, позиционно соответствующие Schema.
type Row []Value

// Table — именованный набор строк с общей схемой.
type Table struct {
	Schema *Schema
	Rows   []Row
}

// Dataset — снапшот входных таблиц отчёта. Только чтение: Evaluate никогда
// не изменяет содержимое.
type Dataset struct {
	tables map[string]*Table
}

func NewDataset() *Dataset {
	return &Dataset{tables: make(map[string]*Table)}
}

func (d *Dataset) Add(name string, table *Table) {
	d.tables[name] = table
}

func (d *Dataset) Table(name string) (*Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown table %q", ErrSchemaMismatch, name)
	}
	return t, nil
}
