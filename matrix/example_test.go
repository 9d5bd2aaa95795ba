package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleDense_View shows a window operation reaching the parent storage.
func ExampleDense_View() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	w, _ := m.View(0, 1, 2, 2)
	_ = matrix.Scale(w.Raw(), 10.0)
	fmt.Print(m)
	// Output:
	// [1, 20, 30]
	// [4, 50, 60]
}
