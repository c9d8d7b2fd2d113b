// Package gm (stands for geometry math) provides the 2d vector type Vec used
// to place entities on screen.
package gm
