package entities

import "time"

// ReportInfo — запись каталога отчётов: номер, имя и форма результата.
type ReportInfo struct {
	ID          int
	Slug        string
	Description string
	Params      []ReportParamInfo
	Columns     []ReportColumn
}

type ReportParamInfo struct {
	Name     string
	Required bool
	Default  string
}

type ReportColumn struct {
	Name string
	Type ReportColumnType
}

type ReportColumnType string

const (
	ColumnInt    ReportColumnType = "int"
	ColumnFloat  ReportColumnType = "float"
	ColumnString ReportColumnType = "string"
	ColumnTime   ReportColumnType = "time"
)

// ReportParams — параметры запуска отчёта. AsOf задаёт момент "сейчас"
// для относительных фильтров по датам.
type ReportParams struct {
	CustomerName *string
	AsOf         *time.Time
}

// ReportResult — упорядоченный результат одного запуска отчёта.
// Значения в Rows позиционно соответствуют Columns; nil значит NULL.
type ReportResult struct {
	Info ReportInfo
	Rows [][]any
}
