package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reporting/internal/report"
)

func globalAggregate(t *testing.T, table *report.Table, aggs ...report.Aggregate) (report.Row, error) {
	t.Helper()

	ds := report.NewDataset()
	ds.Add("t", table)

	spec := report.Spec{
		Slug: "agg-check",
		Pipeline: report.Pipeline{
			From:  report.From{Table: "t"},
			Group: &report.GroupBy{Aggs: aggs},
		},
	}

	res, err := report.Evaluate(spec, ds, date(2024, 5, 1), nil)
	if err != nil {
		return nil, err
	}
	require.Len(t, res.Rows, 1, "глобальный агрегат всегда даёт ровно одну строку")
	return res.Rows[0], nil
}

func TestAggregates(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		[]string{"amount", "status"},
		report.Row{int64(10), "Completed"},
		report.Row{int64(30), "Not Fulfilled"},
		report.Row{nil, "Completed"},
		report.Row{int64(20), "Completed"},
	)

	tests := []struct {
		name     string
		agg      report.Aggregate
		expected report.Value
	}{
		{
			name:     "COUNT считает все строки включая NULL",
			agg:      report.Aggregate{Name: "v", Fn: report.AggCount},
			expected: int64(4),
		},
		{
			name: "Условный COUNT считает только совпавшие",
			agg: report.Aggregate{
				Name: "v", Fn: report.AggCountIf,
				Cond: report.Eq(report.Col("status"), report.Lit("Completed")),
			},
			expected: int64(3),
		},
		{
			name:     "SUM пропускает NULL и остаётся целым",
			agg:      report.Aggregate{Name: "v", Fn: report.AggSum, Arg: report.Col("amount")},
			expected: int64(60),
		},
		{
			name:     "AVG делит на число не-NULL значений",
			agg:      report.Aggregate{Name: "v", Fn: report.AggAvg, Arg: report.Col("amount")},
			expected: 20.0,
		},
		{
			name:     "MIN игнорирует NULL",
			agg:      report.Aggregate{Name: "v", Fn: report.AggMin, Arg: report.Col("amount")},
			expected: int64(10),
		},
		{
			name:     "MAX игнорирует NULL",
			agg:      report.Aggregate{Name: "v", Fn: report.AggMax, Arg: report.Col("amount")},
			expected: int64(30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row, err := globalAggregate(t, table, tt.agg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, row[0])
		})
	}
}

func TestAggregatesOverEmptyInput(t *testing.T) {
	t.Parallel()

	empty := mustTable(t, []string{"amount"})

	row, err := globalAggregate(t, empty,
		report.Aggregate{Name: "cnt", Fn: report.AggCount},
		report.Aggregate{Name: "total", Fn: report.AggSum, Arg: report.Col("amount")},
		report.Aggregate{Name: "mean", Fn: report.AggAvg, Arg: report.Col("amount")},
		report.Aggregate{Name: "lo", Fn: report.AggMin, Arg: report.Col("amount")},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(0), row[0], "COUNT пустого входа — ноль")
	assert.Nil(t, row[1], "SUM без значений — NULL")
	assert.Nil(t, row[2], "AVG без значений — NULL")
	assert.Nil(t, row[3], "MIN без значений — NULL")
}

func TestAggregateSumBecomesFloatOnMixedInput(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		[]string{"amount"},
		report.Row{int64(10)},
		report.Row{2.5},
	)

	row, err := globalAggregate(t, table,
		report.Aggregate{Name: "total", Fn: report.AggSum, Arg: report.Col("amount")},
	)
	require.NoError(t, err)
	assert.Equal(t, 12.5, row[0])
}

func TestAggregateErrors(t *testing.T) {
	t.Parallel()

	table := mustTable(t, []string{"amount"}, report.Row{int64(1)})

	tests := []struct {
		name string
		agg  report.Aggregate
	}{
		{
			name: "Условный COUNT без условия",
			agg:  report.Aggregate{Name: "v", Fn: report.AggCountIf},
		},
		{
			name: "SUM без аргумента",
			agg:  report.Aggregate{Name: "v", Fn: report.AggSum},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := globalAggregate(t, table, tt.agg)
			require.Error(t, err)
			assert.ErrorIs(t, err, report.ErrSpecification)
		})
	}
}

func TestGroupOrderIsFirstOccurrence(t *testing.T) {
	t.Parallel()

	ds := report.NewDataset()
	ds.Add("t", mustTable(t,
		[]string{"city"},
		report.Row{"Pune"},
		report.Row{"Delhi"},
		report.Row{"Pune"},
		report.Row{"Agra"},
	))

	spec := report.Spec{
		Slug: "group_order",
		Pipeline: report.Pipeline{
			From: report.From{Table: "t"},
			Group: &report.GroupBy{
				Keys: []report.Derived{{Name: "city", Expr: report.Col("city")}},
				Aggs: []report.Aggregate{{Name: "cnt", Fn: report.AggCount}},
			},
		},
	}

	res, err := report.Evaluate(spec, ds, date(2024, 5, 1), nil)
	require.NoError(t, err)

	cities := make([]report.Value, len(res.Rows))
	for i, r := range res.Rows {
		cities[i] = r[0]
	}
	assert.Equal(t, []report.Value{"Pune", "Delhi", "Agra"}, cities)
}
