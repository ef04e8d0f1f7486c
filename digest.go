package digest

// Digestible is the capability a value implements to take part in comparison.
// Instead of one value inspecting another's concrete type, each value
// independently publishes its comparison-relevant state as a byte buffer and
// a stateless comparator decides the ordering from the two buffers alone.
type Digestible interface {

	// Digest returns the value's comparison-relevant state as an ordered
	// byte buffer. It must be total (never fail for a valid value), must be
	// a pure function of the value's logical state (two calls on an
	// unchanged value return byte-identical buffers), and must not observe
	// or depend on any other value. Attributes irrelevant to comparison
	// must be excluded. An empty buffer is valid.
	//
	// If lexicographic buffer order is meant to track a semantic order,
	// the implementer must choose an order-preserving encoding; plain
	// two's-complement encodings of signed integers do not preserve
	// numeric order across the sign boundary. See the encoding package.
	Digest() []byte
}

// Func adapts an ordinary function to the Digestible capability.
type Func func() []byte

func (f Func) Digest() []byte {
	return f()
}
