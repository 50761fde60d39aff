package report

import (
	"fmt"
	"time"
)

// Календарные производные колонки: участвуют в группировке наравне
// с обычными колонками.

const (
	SeasonSpring = "SPRING"
	SeasonSummer = "SUMMER"
	SeasonAutumn = "AUTUMN"
	SeasonWinter = "WINTER"
)

type calendarFn int

const (
	fnYear calendarFn = iota
	fnMonth
	fnYearMonth
	fnDayOfWeek
	fnSeason
)

type calendarExpr struct {
	fn      calendarFn
	operand Expr
}

// Year — календарный год временной метки.
func Year(operand Expr) Expr { return calendarExpr{fn: fnYear, operand: operand} }

// Month — номер месяца 1..12.
func Month(operand Expr) Expr { return calendarExpr{fn: fnMonth, operand: operand} }

// YearMonth — строка вида "2023-06" для помесячной группировки.
func YearMonth(operand Expr) Expr { return calendarExpr{fn: fnYearMonth, operand: operand} }

// DayOfWeek — английское имя дня недели ("Monday" .. "Sunday").
func DayOfWeek(operand Expr) Expr { return calendarExpr{fn: fnDayOfWeek, operand: operand} }

// Season — фиксированная сезонная разметка месяца: 3-5 SPRING, 6-8 SUMMER,
// 9-11 AUTUMN, остальные WINTER. Тотальна и непересекаема по построению.
func Season(operand Expr) Expr { return calendarExpr{fn: fnSeason, operand: operand} }

func (e calendarExpr) eval(f *frame, row Row) (Value, error) {
	v, err := e.operand.eval(f, row)
	if err != nil {
		return nil, err
	}
	if isNull(v) {
		return nil, fmt.Errorf("%w: NULL timestamp in calendar function", ErrData)
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: calendar function over %T, want time.Time", ErrSchemaMismatch, v)
	}

	switch e.fn {
	case fnYear:
		return int64(t.Year()), nil
	case fnMonth:
		return int64(t.Month()), nil
	case fnYearMonth:
		return t.Format("2006-01"), nil
	case fnDayOfWeek:
		return t.Weekday().String(), nil
	default:
		return seasonOf(t.Month()), nil
	}
}

func seasonOf(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

type slotStartExpr struct {
	operand Expr
}

// SlotStart — начало двухчасового интервала времени суток:
// floor(hour/2)*2. Операнд — time.Duration от полуночи.
func SlotStart(operand Expr) Expr {
	return slotStartExpr{operand: operand}
}

func (e slotStartExpr) eval(f *frame, row Row) (Value, error) {
	v, err := e.operand.eval(f, row)
	if err != nil {
		return nil, err
	}
	if isNull(v) {
		return nil, fmt.Errorf("%w: NULL time of day in slot bucketing", ErrData)
	}
	d, ok := v.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("%w: slot bucketing over %T, want time.Duration", ErrSchemaMismatch, v)
	}
	hour := int64(d / time.Hour)
	return hour / 2 * 2, nil
}

type elapsedMinutesExpr struct {
	end   Expr
	start Expr
}

// ElapsedMinutes — минуты между двумя значениями времени суток.
// Отрицательная разница означает переход за полночь и компенсируется
// добавлением суток.
func ElapsedMinutes(end, start Expr) Expr {
	return elapsedMinutesExpr{end: end, start: start}
}

func (e elapsedMinutesExpr) eval(f *frame, row Row) (Value, error) {
	ev, err := e.end.eval(f, row)
	if err != nil {
		return nil, err
	}
	sv, err := e.start.eval(f, row)
	if err != nil {
		return nil, err
	}
	if isNull(ev) || isNull(sv) {
		return nil, nil
	}

	end, ok := ev.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("%w: elapsed minutes over %T, want time.Duration", ErrSchemaMismatch, ev)
	}
	start, ok := sv.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("%w: elapsed minutes over %T, want time.Duration", ErrSchemaMismatch, sv)
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * time.Hour
	}
	return diff.Minutes(), nil
}
