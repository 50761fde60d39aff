package report

// Spec — декларативное определение отчёта: скалярные привязки и конвейер.
// Этапы конвейера выполняются в фиксированном реляционном порядке:
// scan → join → where → derive → group → having → window → post-where →
// project → order → limit. Пустые этапы пропускаются.
type Spec struct {
	ID       int
	Slug     string
	Bindings []Binding
	Pipeline Pipeline
}

// Binding — скалярная CTE: вложенный конвейер вычисляется первым, значение
// именованной колонки его первой строки становится параметром основного
// конвейера. Пустой результат даёт NULL.
type Binding struct {
	Name     string
	Column   string
	Pipeline Pipeline
}

type Pipeline struct {
	From      From
	Joins     []Join
	Where     Expr
	Derive    []Derived
	Group     *GroupBy
	Having    Expr
	Windows   []Window
	PostWhere Expr
	Project   []Projection
	OrderBy   []SortKey
	Limit     int
}

// From — источник строк: имя таблицы снапшота либо вложенный конвейер.
type From struct {
	Table string
	Sub   *Pipeline
}

type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
)

// Join — эквисоединение с таблицей снапшота в стиле USING: правые ключевые
// колонки не дублируются в результате. При LEFT JOIN непарная левая строка
// сохраняется, правые колонки получают NULL.
type Join struct {
	Kind  JoinKind
	Table string
	On    []JoinOn
}

type JoinOn struct {
	Left  string
	Right string
}

// Derived — вычисляемая колонка, добавляемая к текущей схеме.
type Derived struct {
	Name string
	Expr Expr
}

type AggFn int

const (
	AggCount AggFn = iota
	AggCountIf
	AggSum
	AggAvg
	AggMin
	AggMax
)

// Aggregate — одна агрегатная колонка. Arg не нужен для AggCount,
// Cond используется только с AggCountIf.
type Aggregate struct {
	Name string
	Fn   AggFn
	Arg  Expr
	Cond Expr
}

// GroupBy — группировка по кортежу ключей. Порядок групп — порядок первого
// вхождения ключа во входных строках.
type GroupBy struct {
	Keys []Derived
	Aggs []Aggregate
}

type WindowFn int

const (
	WinRank WindowFn = iota
	WinDenseRank
	WinLag
)

// Window — оконная колонка, вычисляемая по разделам partition+order.
// OrderBy обязателен; его отсутствие — ошибка спецификации.
type Window struct {
	Name        string
	Fn          WindowFn
	Arg         Expr
	PartitionBy []Expr
	OrderBy     []SortKey
}

type Projection struct {
	Name string
	Expr Expr
}

type SortKey struct {
	Expr Expr
	Desc bool
}

func Asc(e Expr) SortKey  { return SortKey{Expr: e} }
func Desc(e Expr) SortKey { return SortKey{Expr: e, Desc: true} }
