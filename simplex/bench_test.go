package simplex_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// buildBenchModel generates a deterministic dense LP with n variables and
// m "≤" constraints (slack-only, so the benchmark isolates the pivot loop
// rather than Phase I bookkeeping).
func buildBenchModel(n, m int) *lp.Model {
	model := lp.NewModel(fmt.Sprintf("bench-%dx%d", n, m))
	vars := make([]*lp.Variable, n)
	for j := range vars {
		vars[j] = model.AddVariable(fmt.Sprintf("x%d", j))
	}
	for i := 0; i < m; i++ {
		var expr lp.Expression
		for j := 0; j < n; j++ {
			// deterministic pseudo-coefficients in [1, 7]
			expr = expr.Add(lp.Term(vars[j], float64((i*7+j*3)%7+1)))
		}
		model.AddConstraint(expr, lp.LE, float64(50+i*10))
	}
	var obj lp.Expression
	for j := 0; j < n; j++ {
		obj = obj.Add(lp.Term(vars[j], float64(j%5+1)))
	}
	model.Maximize(obj)

	return model
}

// BenchmarkSolve measures a full Solve on a 20x15 dense model.
func BenchmarkSolve(b *testing.B) {
	model := buildBenchModel(20, 15)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(model, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPivot measures a single Gauss-Jordan pivot on a 40x30 tableau.
func BenchmarkPivot(b *testing.B) {
	model := buildBenchModel(40, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tab := simplex.NewTableau(model, 0)
		col := tab.EnteringColumn()
		row := tab.LeavingRow(col)
		b.StartTimer()
		tab.Pivot(row, col)
	}
}
