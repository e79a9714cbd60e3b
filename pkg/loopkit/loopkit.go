// Package loopkit helps with the bookkeeping that comes with repetition,
// without depending on any particular iteration construct.
package loopkit

// SkipFirst lets you always do something, except the first time.
//
// The zero value is ready to use.
// It is meant to be created right before a loop and discarded after it.
// A SkipFirst is not safe for concurrent use.
//
//	var comma loopkit.SkipFirst
//	for _, name := range names {
//		comma.Do(func() { fmt.Print(", ") })
//		fmt.Print(name)
//	}
type SkipFirst struct {
	seen bool
}

// NewSkipFirst returns a SkipFirst that did not see its first call yet.
func NewSkipFirst() *SkipFirst {
	return &SkipFirst{}
}

// Do executes fn, except the first time Do is called on this SkipFirst.
// It reports whether fn was executed.
func (sf *SkipFirst) Do(fn func()) bool {
	if !sf.next() {
		return false
	}
	fn()
	return true
}

// DoErr executes fn, except on the first call, and returns its error as is.
// When fn is skipped, DoErr returns nil.
func (sf *SkipFirst) DoErr(fn func() error) error {
	if !sf.next() {
		return nil
	}
	return fn()
}

// Seen reports whether the first call already happened.
func (sf *SkipFirst) Seen() bool {
	return sf.seen
}

func (sf *SkipFirst) next() bool {
	if sf.seen {
		return true
	}
	sf.seen = true
	return false
}

// SkipFirstFunc executes fn through the SkipFirst, and returns its result.
// When fn is skipped, the zero value is returned with false.
func SkipFirstFunc[R any](sf *SkipFirst, fn func() R) (R, bool) {
	var out R
	ok := sf.Do(func() { out = fn() })
	return out, ok
}
