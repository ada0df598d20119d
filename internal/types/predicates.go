package types

import (
	"errors"
	"math"
	"strconv"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Identical reports whether x and y are identical types.
// Arrays are identical when their element types are; lengths are
// not part of an array's identity.
func Identical(x, y syntax.Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *syntax.BasicType:
		if y, ok := y.(*syntax.BasicType); ok {
			return x.Kind == y.Kind
		}
	case *syntax.ArrayType:
		if y, ok := y.(*syntax.ArrayType); ok {
			return Identical(x.Elem, y.Elem)
		}
	}
	return false
}

// AssignableTo reports whether a value of type V may be stored in a
// location of type T. An int may be stored in a float after conversion.
// The error type is assignable in both directions so that one mistake
// is reported once.
func AssignableTo(V, T syntax.Type) bool {
	if IsError(V) || IsError(T) {
		return true
	}
	if Identical(V, T) {
		return true
	}
	return IsInt(V) && IsFloat(T)
}

// NeedsConversion reports whether storing a V in a T requires an
// int-to-float conversion.
func NeedsConversion(V, T syntax.Type) bool {
	return IsInt(V) && IsFloat(T)
}

func isBasic(t syntax.Type, kind syntax.BasicKind) bool {
	b, ok := t.(*syntax.BasicType)
	return ok && b.Kind == kind
}

// IsInt reports whether t is int.
func IsInt(t syntax.Type) bool { return isBasic(t, syntax.Int) }

// IsFloat reports whether t is float.
func IsFloat(t syntax.Type) bool { return isBasic(t, syntax.Float) }

// IsBool reports whether t is bool.
func IsBool(t syntax.Type) bool { return isBasic(t, syntax.Bool) }

// IsVoid reports whether t is void.
func IsVoid(t syntax.Type) bool { return isBasic(t, syntax.Void) }

// IsString reports whether t is string.
func IsString(t syntax.Type) bool { return isBasic(t, syntax.String) }

// IsError reports whether t is the error type.
func IsError(t syntax.Type) bool { return isBasic(t, syntax.Error) }

// IsNumeric reports whether t is int or float.
func IsNumeric(t syntax.Type) bool { return IsInt(t) || IsFloat(t) }

// IsArray reports whether t is an array type.
func IsArray(t syntax.Type) bool {
	_, ok := t.(*syntax.ArrayType)
	return ok
}

// Elem returns the element type of an array type, or nil.
func Elem(t syntax.Type) syntax.Type {
	if a, ok := t.(*syntax.ArrayType); ok {
		return a.Elem
	}
	return nil
}

// ArrayLen returns the declared length of an array type. ok is false
// if t is not an array or its length was omitted. A length too large
// for an int is clamped to math.MaxInt.
func ArrayLen(t syntax.Type) (n int, ok bool) {
	a, isArray := t.(*syntax.ArrayType)
	if !isArray {
		return 0, false
	}
	lit, isLit := a.Len.(*syntax.BasicLit)
	if !isLit {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Value)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}
