package digest

import (
	"testing"

	"pgregory.net/rapid"
)

func drawBytes(t *rapid.T, label string) []byte {
	return rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, label)
}

func TestCompareReflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawBytes(t, "a")
		if got := CompareBytes(a, a); got != Equal {
			t.Fatalf("compare(a, a) = %v", got)
		}
	})
}

func TestCompareAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawBytes(t, "a")
		b := drawBytes(t, "b")
		if CompareBytes(a, b) != -CompareBytes(b, a) {
			t.Fatalf("compare(a, b) = %v, compare(b, a) = %v", CompareBytes(a, b), CompareBytes(b, a))
		}
	})
}

func TestCompareTransitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawBytes(t, "a")
		b := drawBytes(t, "b")
		c := drawBytes(t, "c")
		if CompareBytes(a, b) == LessThan && CompareBytes(b, c) == LessThan {
			if got := CompareBytes(a, c); got != LessThan {
				t.Fatalf("a < b and b < c but compare(a, c) = %v", got)
			}
		}
	})
}

func TestComparePrefixRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawBytes(t, "a")
		suffix := rapid.SliceOfN(rapid.Byte(), 1, 16).Draw(t, "suffix")
		b := append(append([]byte{}, a...), suffix...)
		if got := CompareBytes(a, b); got != LessThan {
			t.Fatalf("compare(prefix, extended) = %v", got)
		}
	})
}
