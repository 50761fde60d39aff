package report

import (
	"fmt"
	"time"
)

// Expr — выражение над одной строкой. Вычисляется в контексте схемы
// текущего этапа конвейера.
type Expr interface {
	eval(f *frame, row Row) (Value, error)
}

// frame — контекст вычисления выражений одного этапа: схема строк,
// момент "сейчас" и именованные параметры отчёта.
type frame struct {
	schema *Schema
	asOf   time.Time
	params map[string]Value
}

type colExpr struct {
	name string
}

// Col — ссылка на колонку по имени.
func Col(name string) Expr {
	return colExpr{name: name}
}

func (e colExpr) eval(f *frame, row Row) (Value, error) {
	i, ok := f.schema.Lookup(e.name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown column %q", ErrSchemaMismatch, e.name)
	}
	return row[i], nil
}

type litExpr struct {
	value Value
}

// Lit — константа.
func Lit(v Value) Expr {
	switch t := v.(type) {
	case int:
		return litExpr{value: int64(t)}
	default:
		return litExpr{value: v}
	}
}

func (e litExpr) eval(_ *frame, _ Row) (Value, error) {
	return e.value, nil
}

type paramExpr struct {
	name string
}

// Param — именованный параметр запуска отчёта.
func Param(name string) Expr {
	return paramExpr{name: name}
}

func (e paramExpr) eval(f *frame, _ Row) (Value, error) {
	v, ok := f.params[e.name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q is not bound", ErrSpecification, e.name)
	}
	return v, nil
}

type asOfExpr struct{}

// AsOf — момент вычисления отчёта.
func AsOf() Expr {
	return asOfExpr{}
}

func (asOfExpr) eval(f *frame, _ Row) (Value, error) {
	return f.asOf, nil
}

type agoMonthsExpr struct {
	months int
}

// AgoMonths — момент за n месяцев до AsOf. Основа относительных фильтров
// "за последние N месяцев".
func AgoMonths(n int) Expr {
	return agoMonthsExpr{months: n}
}

func (e agoMonthsExpr) eval(f *frame, _ Row) (Value, error) {
	return f.asOf.AddDate(0, -e.months, 0), nil
}

type cmpOp int

const (
	opEq cmpOp = iota
	opNe
	opLt
	opLe
	opGt
	opGe
)

type cmpExpr struct {
	op    cmpOp
	left  Expr
	right Expr
}

func Eq(a, b Expr) Expr { return cmpExpr{op: opEq, left: a, right: b} }
func Ne(a, b Expr) Expr { return cmpExpr{op: opNe, left: a, right: b} }
func Lt(a, b Expr) Expr { return cmpExpr{op: opLt, left: a, right: b} }
func Le(a, b Expr) Expr { return cmpExpr{op: opLe, left: a, right: b} }
func Gt(a, b Expr) Expr { return cmpExpr{op: opGt, left: a, right: b} }
func Ge(a, b Expr) Expr { return cmpExpr{op: opGe, left: a, right: b} }

func (e cmpExpr) eval(f *frame, row Row) (Value, error) {
	lv, err := e.left.eval(f, row)
	if err != nil {
		return nil, err
	}
	rv, err := e.right.eval(f, row)
	if err != nil {
		return nil, err
	}
	// Сравнение с NULL даёт NULL, предикат его отбросит.
	if isNull(lv) || isNull(rv) {
		return nil, nil
	}

	c, err := compareValues(lv, rv)
	if err != nil {
		return nil, err
	}
	switch e.op {
	case opEq:
		return c == 0, nil
	case opNe:
		return c != 0, nil
	case opLt:
		return c < 0, nil
	case opLe:
		return c <= 0, nil
	case opGt:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

type boolOp int

const (
	opAnd boolOp = iota
	opOr
)

type boolExpr struct {
	op       boolOp
	operands []Expr
}

func And(operands ...Expr) Expr { return boolExpr{op: opAnd, operands: operands} }
func Or(operands ...Expr) Expr  { return boolExpr{op: opOr, operands: operands} }

func (e boolExpr) eval(f *frame, row Row) (Value, error) {
	for _, op := range e.operands {
		v, err := op.eval(f, row)
		if err != nil {
			return nil, err
		}
		b, err := truth(v)
		if err != nil {
			return nil, err
		}
		if e.op == opAnd && !b {
			return false, nil
		}
		if e.op == opOr && b {
			return true, nil
		}
	}
	return e.op == opAnd, nil
}

type notExpr struct {
	operand Expr
}

func Not(operand Expr) Expr { return notExpr{operand: operand} }

func (e notExpr) eval(f *frame, row Row) (Value, error) {
	v, err := e.operand.eval(f, row)
	if err != nil {
		return nil, err
	}
	b, err := truth(v)
	if err != nil {
		return nil, err
	}
	return !b, nil
}

type isNullExpr struct {
	operand Expr
	negate  bool
}

// IsNull — истинно, когда операнд NULL. Механизм поиска непарных строк
// после LEFT JOIN.
func IsNull(operand Expr) Expr  { return isNullExpr{operand: operand} }
func NotNull(operand Expr) Expr { return isNullExpr{operand: operand, negate: true} }

func (e isNullExpr) eval(f *frame, row Row) (Value, error) {
	v, err := e.operand.eval(f, row)
	if err != nil {
		return nil, err
	}
	return isNull(v) != e.negate, nil
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
)

type arithExpr struct {
	op    arithOp
	left  Expr
	right Expr
}

func Add(a, b Expr) Expr { return arithExpr{op: opAdd, left: a, right: b} }
func Sub(a, b Expr) Expr { return arithExpr{op: opSub, left: a, right: b} }
func Mul(a, b Expr) Expr { return arithExpr{op: opMul, left: a, right: b} }

func (e arithExpr) eval(f *frame, row Row) (Value, error) {
	lv, err := e.left.eval(f, row)
	if err != nil {
		return nil, err
	}
	rv, err := e.right.eval(f, row)
	if err != nil {
		return nil, err
	}
	if isNull(lv) || isNull(rv) {
		return nil, nil
	}

	li, lInt := lv.(int64)
	ri, rInt := rv.(int64)
	if lInt && rInt {
		switch e.op {
		case opAdd:
			return li + ri, nil
		case opSub:
			return li - ri, nil
		default:
			return li * ri, nil
		}
	}

	lf, ok := asFloat(lv)
	if !ok {
		return nil, fmt.Errorf("%w: arithmetic over %T", ErrSchemaMismatch, lv)
	}
	rf, ok := asFloat(rv)
	if !ok {
		return nil, fmt.Errorf("%w: arithmetic over %T", ErrSchemaMismatch, rv)
	}
	switch e.op {
	case opAdd:
		return lf + rf, nil
	case opSub:
		return lf - rf, nil
	default:
		return lf * rf, nil
	}
}

type safeDivExpr struct {
	num Expr
	den Expr
}

// SafeDiv — деление с NULLIF-семантикой: NULL или ноль в знаменателе дают
// NULL, а не ошибку.
func SafeDiv(num, den Expr) Expr {
	return safeDivExpr{num: num, den: den}
}

func (e safeDivExpr) eval(f *frame, row Row) (Value, error) {
	nv, err := e.num.eval(f, row)
	if err != nil {
		return nil, err
	}
	dv, err := e.den.eval(f, row)
	if err != nil {
		return nil, err
	}
	if isNull(nv) || isNull(dv) {
		return nil, nil
	}

	nf, ok := asFloat(nv)
	if !ok {
		return nil, fmt.Errorf("%w: division over %T", ErrSchemaMismatch, nv)
	}
	df, ok := asFloat(dv)
	if !ok {
		return nil, fmt.Errorf("%w: division over %T", ErrSchemaMismatch, dv)
	}
	if df == 0 {
		return nil, nil
	}
	return nf / df, nil
}

// When — одна ветка условного выражения Case.
type When struct {
	Cond Expr
	Then Expr
}

type caseExpr struct {
	whens []When
	els   Expr
}

// Case — условная разметка значений (CASE WHEN ... THEN ... ELSE ... END).
// Без совпавшей ветки и без Else результат NULL.
func Case(whens []When, els Expr) Expr {
	return caseExpr{whens: whens, els: els}
}

func (e caseExpr) eval(f *frame, row Row) (Value, error) {
	for _, w := range e.whens {
		v, err := w.Cond.eval(f, row)
		if err != nil {
			return nil, err
		}
		b, err := truth(v)
		if err != nil {
			return nil, err
		}
		if b {
			return w.Then.eval(f, row)
		}
	}
	if e.els == nil {
		return nil, nil
	}
	return e.els.eval(f, row)
}
