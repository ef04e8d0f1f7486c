package digest

// Comparison is the tri-state outcome of comparing two digests.
// Its numeric values follow the usual three-way convention, so a
// Comparison can be used directly where an int ordering is expected.
type Comparison int

const (
	LessThan    Comparison = -1
	Equal       Comparison = 0
	GreaterThan Comparison = 1
)

func (c Comparison) String() string {
	switch {
	case c < 0:
		return "LessThan"
	case c > 0:
		return "GreaterThan"
	default:
		return "Equal"
	}
}
