package fixer

// errorRing is a fixed-size ring buffer of recent errors. It is owned by a
// single tracker and is not safe for concurrent use.
type errorRing struct {
	errors []error
	head   int
	count  int
}

// newErrorRing creates a ring with the given capacity. A size of 0 or less
// disables history and returns nil; all methods are nil-safe.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{errors: make([]error, size)}
}

func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.errors[r.head] = err
	r.head = (r.head + 1) % len(r.errors)
	if r.count < len(r.errors) {
		r.count++
	}
}

func (r *errorRing) clear() {
	if r == nil {
		return
	}
	clear(r.errors)
	r.head = 0
	r.count = 0
}

// all returns the buffered errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil || r.count == 0 {
		return nil
	}
	size := len(r.errors)
	out := make([]error, r.count)
	start := (r.head - r.count + size) % size
	for i := range out {
		out[i] = r.errors[(start+i)%size]
	}
	return out
}
