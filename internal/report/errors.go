package report

import "errors"

var (
	// ErrSchemaMismatch — ссылка на несуществующую таблицу/колонку либо
	// несовместимые типы в ключе соединения или выражении.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrSpecification — некорректное определение отчёта (например, оконная
	// функция без сортировки).
	ErrSpecification = errors.New("invalid report specification")

	// ErrData — NULL или мусор в семантически обязательной позиции.
	ErrData = errors.New("data error")
)
