// package either provides a value which holds one of two types.
package either

import "fmt"

// Either holds exactly one of a Left or a Right.
// The zero value holds the zero Left.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](x L) Either[L, R] {
	return Either[L, R]{left: x}
}

func Right[L, R any](x R) Either[L, R] {
	return Either[L, R]{right: x, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value, and false if e holds a Right.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the right value, and false if e holds a Left.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft applies fn to a Left value. A Right value is passed through.
func MapLeft[L, R, T any](e Either[L, R], fn func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](fn(e.left))
}

// MapRight applies fn to a Right value. A Left value is passed through.
func MapRight[L, R, T any](e Either[L, R], fn func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L](fn(e.right))
}

// Fold calls exactly one of fl or fr.
func Fold[L, R, T any](e Either[L, R], fl func(L) T, fr func(R) T) T {
	if e.isRight {
		return fr(e.right)
	}
	return fl(e.left)
}
