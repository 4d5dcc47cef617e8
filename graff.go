/*
Package graff provides the symbolic and numerical core of a function-graphing
program: an expression tree with simplifying constructors and symbolic
differentiation, dense-coefficient polynomial arithmetic, deterministic
quadrature, Legendre-basis projection and gradient-descent curve fitting.
The rendering layer consumes sampled (x, y) sequences produced by these
packages and is not part of this module.
*/
package graff
