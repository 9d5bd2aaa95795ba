// SPDX-License-Identifier: MIT

// Package cplx provides the elementary complex functions: powers, roots,
// exponentials and logarithms, the six circular and six hyperbolic functions,
// their inverses, and the *Real forms that take a real argument and return the
// complex branch when it leaves the real domain (ArcsinReal(2), SqrtReal(-1)).
//
// Values come from math/cmplx. The reciprocal functions (Sec, Csc, Sech, ...)
// and their inverses are built from it through 1/z. Branch cuts follow
// math/cmplx for complex arguments; the *Real forms pick the branch
// explicitly, with the sign of the imaginary part documented per function.
//
// None of these functions signal errors: an undefined value is NaN or Inf
// in the components, as in math/cmplx.
package cplx
