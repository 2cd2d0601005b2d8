package bitcmd

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"

	"myceliumweb.org/bitnum/bitmem"
	"myceliumweb.org/bitnum/either"
)

// Value is anything an Op can produce.
type Value = fmt.Stringer

// Op is an operation on operands of a single Type.
type Op struct {
	Arity int
	F     func(args []Value) (Value, error)
}

// Type describes how to parse operands and which operations apply to them.
type Type struct {
	Name  string
	Width int
	// Parse accepts a decimal literal, or a binary literal prefixed with 0b.
	Parse func(string) (Value, error)
	Ops   map[string]Op
}

// DefaultTypes returns every type known to the command line, keyed by name.
func DefaultTypes() map[string]Type {
	return maps.Clone(defaultTypes)
}

var defaultTypes = map[string]Type{
	"b4":  arrayType[[4]bitmem.Bit]("b4"),
	"b8":  arrayType[[8]bitmem.Bit]("b8"),
	"b16": arrayType[[16]bitmem.Bit]("b16"),
	"b32": arrayType[[32]bitmem.Bit]("b32"),
	"b64": arrayType[[64]bitmem.Bit]("b64"),

	"u8":  intType[uint8, [8]bitmem.Bit]("u8"),
	"u16": intType[uint16, [16]bitmem.Bit]("u16"),
	"u32": intType[uint32, [32]bitmem.Bit]("u32"),
	"u64": intType[uint64, [64]bitmem.Bit]("u64"),
	"i8":  intType[int8, [8]bitmem.Bit]("i8"),
	"i16": intType[int16, [16]bitmem.Bit]("i16"),
	"i32": intType[int32, [32]bitmem.Bit]("i32"),
	"i64": intType[int64, [64]bitmem.Bit]("i64"),

	"f32": floatType[float32, [32]bitmem.Bit]("f32"),
	"f64": floatType[float64, [64]bitmem.Bit]("f64"),
}

// operand is either a binary literal (Left) or a decimal literal (Right).
type operand = either.Either[string, string]

func classify(s string) operand {
	if bin, ok := strings.CutPrefix(s, "0b"); ok {
		return either.Left[string, string](bin)
	}
	return either.Right[string](s)
}

func arrayType[A bitmem.Array](name string) Type {
	w := bitmem.WidthOf[A]()
	parse := func(s string) (Value, error) {
		o := classify(s)
		if bin, ok := o.GetLeft(); ok {
			x, err := bitmem.ParseBits[A](bin)
			if err != nil {
				return nil, err
			}
			return x, nil
		}
		dec, _ := o.GetRight()
		x, err := strconv.ParseUint(dec, 10, w)
		if err != nil {
			return nil, err
		}
		return bitmem.ArrayFromUint64[A](x), nil
	}
	count := func(x bitmem.BitArray[A]) uint { return uint(x.Uint64()) }
	ops := map[string]Op{
		"not": unary(bitmem.BitArray[A].Not),
		"and": binary(bitmem.BitArray[A].And),
		"or":  binary(bitmem.BitArray[A].Or),
		"xor": binary(bitmem.BitArray[A].Xor),

		"shl": binary(func(x, k bitmem.BitArray[A]) bitmem.BitArray[A] {
			return x.ShiftLeft(count(k))
		}),
		"shr": binary(func(x, k bitmem.BitArray[A]) bitmem.BitArray[A] {
			return x.ShiftRight(count(k))
		}),
		"rotl": binary(func(x, k bitmem.BitArray[A]) bitmem.BitArray[A] {
			return x.RotateLeft(count(k))
		}),
		"rotr": binary(func(x, k bitmem.BitArray[A]) bitmem.BitArray[A] {
			return x.RotateRight(count(k))
		}),
		"rev": unary(bitmem.BitArray[A].ReverseBits),
		"popcount": unary(func(x bitmem.BitArray[A]) bitmem.BitArray[A] {
			return bitmem.ArrayFromUint64[A](uint64(x.CountOnes()))
		}),

		"is": predicate(bitmem.BitArray[A].Is),
	}
	return Type{Name: name, Width: w, Parse: parse, Ops: ops}
}

func intType[T constraints.Integer, A bitmem.Array](name string) Type {
	w := bitmem.WidthOf[A]()
	signed := bitmem.Integer[T, A]{}.Signed()
	parse := func(s string) (Value, error) {
		o := classify(s)
		if bin, ok := o.GetLeft(); ok {
			x, err := bitmem.Parse[T, A](bin)
			if err != nil {
				return nil, err
			}
			return x, nil
		}
		dec, _ := o.GetRight()
		if signed {
			x, err := strconv.ParseInt(dec, 10, w)
			if err != nil {
				return nil, err
			}
			return bitmem.FromNative[T, A](T(x)), nil
		}
		x, err := strconv.ParseUint(dec, 10, w)
		if err != nil {
			return nil, err
		}
		return bitmem.FromNative[T, A](T(x)), nil
	}
	count := func(x bitmem.Integer[T, A]) uint { return uint(x.Bits().Uint64()) }
	ops := map[string]Op{
		"add": binary(bitmem.Integer[T, A].Add),
		"sub": binary(bitmem.Integer[T, A].Sub),
		"mul": binary(bitmem.Integer[T, A].Mul),
		"div": binaryErr(bitmem.Integer[T, A].Div),
		"rem": binaryErr(bitmem.Integer[T, A].Rem),
		"neg": unary(bitmem.Integer[T, A].Neg),

		"not": unary(bitmem.Integer[T, A].Not),
		"and": binary(bitmem.Integer[T, A].And),
		"or":  binary(bitmem.Integer[T, A].Or),
		"xor": binary(bitmem.Integer[T, A].Xor),

		"shl": binary(func(x, k bitmem.Integer[T, A]) bitmem.Integer[T, A] {
			return x.Shl(count(k))
		}),
		"shr": binary(func(x, k bitmem.Integer[T, A]) bitmem.Integer[T, A] {
			return x.Shr(count(k))
		}),
		"rotl": binary(func(x, k bitmem.Integer[T, A]) bitmem.Integer[T, A] {
			return x.RotateLeft(count(k))
		}),
		"rotr": binary(func(x, k bitmem.Integer[T, A]) bitmem.Integer[T, A] {
			return x.RotateRight(count(k))
		}),
		"rev": unary(bitmem.Integer[T, A].ReverseBits),
		"popcount": unary(func(x bitmem.Integer[T, A]) bitmem.Integer[T, A] {
			return bitmem.FromNative[T, A](T(x.CountOnes()))
		}),

		"is":   predicate(bitmem.Integer[T, A].Is),
		"less": predicate(bitmem.Integer[T, A].Less),
	}
	return Type{Name: name, Width: w, Parse: parse, Ops: ops}
}

func floatType[T bitmem.FloatNative, A bitmem.FloatArray](name string) Type {
	w := bitmem.WidthOf[A]()
	parse := func(s string) (Value, error) {
		o := classify(s)
		if bin, ok := o.GetLeft(); ok {
			bits, err := bitmem.ParseBits[A](bin)
			if err != nil {
				return nil, err
			}
			return bitmem.FloatFromArray[T](bits), nil
		}
		dec, _ := o.GetRight()
		x, err := strconv.ParseFloat(dec, w)
		if err != nil {
			return nil, err
		}
		return bitmem.FromFloat[T, A](T(x)), nil
	}
	ops := map[string]Op{
		"add": binary(bitmem.Float[T, A].Add),
		"sub": binary(bitmem.Float[T, A].Sub),
		"mul": binary(bitmem.Float[T, A].Mul),
		"div": binary(bitmem.Float[T, A].Div),
		"neg": unary(bitmem.Float[T, A].Neg),
		"abs": unary(bitmem.Float[T, A].Abs),

		"is":    predicate(bitmem.Float[T, A].Is),
		"equal": predicate(bitmem.Float[T, A].Equal),
		"less":  predicate(bitmem.Float[T, A].Less),
		"nan":   unary(bitmem.Float[T, A].IsNaN),
		"inf":   unary(bitmem.Float[T, A].IsInf),
	}
	return Type{Name: name, Width: w, Parse: parse, Ops: ops}
}

func unary[X, Y Value](fn func(X) Y) Op {
	return Op{
		Arity: 1,
		F: func(args []Value) (Value, error) {
			return fn(args[0].(X)), nil
		},
	}
}

func binary[X, Y Value](fn func(X, X) Y) Op {
	return Op{
		Arity: 2,
		F: func(args []Value) (Value, error) {
			return fn(args[0].(X), args[1].(X)), nil
		},
	}
}

func binaryErr[X Value](fn func(X, X) (X, error)) Op {
	return Op{
		Arity: 2,
		F: func(args []Value) (Value, error) {
			return fn(args[0].(X), args[1].(X))
		},
	}
}

func predicate[X Value](fn func(X, X) bitmem.Bool) Op {
	return binary(fn)
}
