package catalog

import (
	"errors"
	"fmt"
	"time"

	"reporting/internal/entities"
	"reporting/internal/report"
)

var ErrUnknownReport = errors.New("unknown report")

// Entry — один отчёт каталога: метаданные плюс спецификация для движка.
type Entry struct {
	Info entities.ReportInfo
	Spec report.Spec

	// bindParams переводит параметры запуска в именованные параметры движка.
	bindParams func(params entities.ReportParams) map[string]report.Value
}

// Catalog — фиксированная версионированная поверхность из двадцати отчётов.
// Явный конфигурационный объект: ни схема, ни каталог не живут в глобальном
// состоянии, несколько каталогов могут сосуществовать в тестах.
type Catalog struct {
	entries []Entry
	byID    map[int]int
}

func New() *Catalog {
	entries := buildEntries()
	byID := make(map[int]int, len(entries))
	for i, e := range entries {
		byID[e.Info.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}
}

// List возвращает метаданные всех отчётов в порядке номеров.
func (c *Catalog) List() []entities.ReportInfo {
	out := make([]entities.ReportInfo, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Info
	}
	return out
}

func (c *Catalog) Get(id int) (*Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownReport, id)
	}
	return &c.entries[i], nil
}

// Run вычисляет отчёт id над датасетом. asOf — момент "сейчас" для
// относительных фильтров по датам.
func (c *Catalog) Run(id int, ds *report.Dataset, asOf time.Time, params entities.ReportParams) (*entities.ReportResult, error) {
	entry, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	var engineParams map[string]report.Value
	if entry.bindParams != nil {
		engineParams = entry.bindParams(params)
	}

	result, err := report.Evaluate(entry.Spec, ds, asOf, engineParams)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = r
	}
	return &entities.ReportResult{Info: entry.Info, Rows: rows}, nil
}
