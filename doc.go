// Package lvnum is a numerical toolkit over plain Go slices: BLAS levels 1-3,
// dense linear algebra, special functions, complex elementary functions,
// callback-driven solvers and a small curses-style terminal layer, all
// reporting failures through one error bridge.
//
// 🚀 What is lvnum?
//
//	A set of packages that share a single view and error model:
//		• Views: strided vector and row-major matrix views over []T
//		• Errors: native codes (EDOM, ESING, EMAXITER…) bridged to Go errors
//		• BLAS: level 1, 2 and 3 for float32, float64, complex64, complex128
//		• Linear algebra: LU, QR, SVD, Cholesky, symmetric eigen, tridiagonal
//		• Special functions: gamma, erf, Bessel, elliptic, zeta, exp/log
//		• Solvers: integration, minimisation, multiroot, fitting, Monte Carlo
//		• Terminal: screens, windows and bounded input
//
// ✨ Why lvnum?
//
//   - No copies: every routine works in place on the caller's slices
//   - One error story: signals unwind to error returns, or reach a handler
//   - Host callbacks are safe: a failing or panicking callback stops the solver
//
// Packages:
//
//	numerr/ — error codes, the bridge and host-callback failures
//	view/   — Vector and Matrix views (stride, tda, sub-views)
//	permut/ — permutations: init, validate, apply, inverse
//	vector/ — element-wise vector kernels
//	matrix/ — dense owned matrices with options and validators
//	blas/   — BLAS levels 1-3
//	linalg/ — decompositions and solvers
//	sf/     — special functions, value and error-estimate forms
//	cplx/   — complex elementary and trigonometric functions
//	fun/    — host-function solvers
//	term/   — terminal control
//
// Quick example:
//
//	a, _ := view.NewMatrix([]float64{4, 3, 6, 3}, 2, 2)
//	p, _ := permut.New(2)
//	_, _ = linalg.LUDecomp(a, p)
//	x := make([]float64, 2)
//	_ = linalg.LUSolve(a, p, view.Contiguous([]float64{10, 12}), view.Contiguous(x))
//	// x == [1 2]
//
//	go get github.com/katalvlaran/lvnum
package lvnum
