package bintree

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparable lets a dynamically typed value define its own ordering in
// trees created by NewAny.
type Comparable interface {
	Compare(other any) int
}

type kindClass int

const (
	classNone kindClass = iota
	classInt
	classUint
	classFloat
	classString
)

func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a == b {
		return 0
	}
	// greater, or unordered like NaN; both insert to the right
	return 1
}

// CompareAny orders two dynamically typed values. Integers, unsigned
// integers and floats compare with each other numerically, strings compare
// with strings, and a Comparable compares through its Compare method. Any
// other pair panics with an *InvalidComparisonError.
func CompareAny(a, b any) int {
	c, err := compareAny(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// EqualAny reports whether a and b compare equal. Values without an
// ordering between them are simply not equal.
func EqualAny(a, b any) bool {
	c, err := compareAny(a, b)
	if err != nil {
		return false
	}
	return c == 0
}

func compareAny(a, b any) (int, error) {
	if a == nil || b == nil {
		return 0, &InvalidComparisonError{A: a, B: b}
	}
	if ca, ok := a.(Comparable); ok {
		return ca.Compare(b), nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := classOf(va.Kind()), classOf(vb.Kind())

	switch {
	case ka == classString && kb == classString:
		return compareOrdered(va.String(), vb.String()), nil
	case ka == classInt && kb == classInt:
		return compareOrdered(va.Int(), vb.Int()), nil
	case ka == classUint && kb == classUint:
		return compareOrdered(va.Uint(), vb.Uint()), nil
	case ka == classInt && kb == classUint:
		return compareIntUint(va.Int(), vb.Uint()), nil
	case ka == classUint && kb == classInt:
		return -compareIntUint(vb.Int(), va.Uint()), nil
	case ka.numeric() && kb.numeric():
		return compareOrdered(toFloat(va), toFloat(vb)), nil
	}
	return 0, &InvalidComparisonError{A: a, B: b}
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return compareOrdered(uint64(i), u)
}

func classOf(k reflect.Kind) kindClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	}
	return classNone
}

func (c kindClass) numeric() bool {
	return c == classInt || c == classUint || c == classFloat
}

func toFloat(v reflect.Value) float64 {
	switch classOf(v.Kind()) {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	}
	return v.Float()
}
