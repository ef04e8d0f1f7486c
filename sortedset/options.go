package sortedset

type option struct {
	Capacity int
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// Capacity pre-allocates space for n elements.
func Capacity(n int) Option {
	return func(o *option) {
		o.Capacity = n
	}
}
