// Package statuskit annotates the elements of a sequence with their position in it.
package statuskit

import (
	"iter"
	"strconv"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Status tells where an element sits in the sequence it was produced from.
//
// An element can be the first and the last at the same time
// when the sequence has exactly one element, which is reported as FirstAndLast.
type Status int

const (
	_ Status = iota
	First
	Middle
	Last
	FirstAndLast
)

// StatusOf maps the first/last flags of an element into a Status.
func StatusOf(first, last bool) Status {
	switch {
	case first && last:
		return FirstAndLast
	case first:
		return First
	case last:
		return Last
	default:
		return Middle
	}
}

// IsFirst reports whether the element is the first one.
// A single element sequence's element is both first and last,
// use IsFirstOnly to exclude that case.
func (s Status) IsFirst() bool { return s == First || s == FirstAndLast }

// IsLast reports whether the element is the last one.
// A single element sequence's element is both first and last,
// use IsLastOnly to exclude that case.
func (s Status) IsLast() bool { return s == Last || s == FirstAndLast }

// IsFirstOnly reports whether the element is the first one and not the only one.
func (s Status) IsFirstOnly() bool { return s == First }

// IsLastOnly reports whether the element is the last one and not the only one.
func (s Status) IsLastOnly() bool { return s == Last }

// IsMiddle reports whether the element is neither the first nor the last.
func (s Status) IsMiddle() bool { return s == Middle }

// IsInBetween is an alias for IsMiddle.
func (s Status) IsInBetween() bool { return s.IsMiddle() }

func (s Status) String() string {
	switch s {
	case First:
		return "first"
	case Middle:
		return "middle"
	case Last:
		return "last"
	case FirstAndLast:
		return "first-and-last"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// StatusValue pairs a value with its Status.
// It is used where the pair can't be expressed as an iter.Seq2, like with iterkit.SeqE or iterkit.PullIter.
type StatusValue[T any] struct {
	Value  T
	Status Status
}

// WithStatus annotates every element of the sequence with its Status.
//
// To tell if an element is the last one, WithStatus holds it back until the next element arrives,
// thus the source is always consumed one element ahead of what is yielded.
// Side effects of the source become visible one step earlier than expected.
// With an infinite source, no element is ever reported as Last.
//
// The returned sequence can be iterated again if the source can.
func WithStatus[T any](i iter.Seq[T]) iter.Seq2[T, Status] {
	return func(yield func(T, Status) bool) {
		var (
			current  T
			buffered bool
			first    = true
		)
		for next := range i {
			if buffered {
				if !yield(current, StatusOf(first, false)) {
					return
				}
				first = false
			}
			current, buffered = next, true
		}
		if buffered {
			yield(current, StatusOf(first, true))
		}
	}
}

// WithStatusE annotates an iterkit.SeqE with the Status of each element.
//
// An error yielded by the source is treated as an element of its own:
// it keeps its position, receives the Status of that position and is passed along unchanged.
func WithStatusE[T any](i iterkit.SeqE[T]) iterkit.SeqE[StatusValue[T]] {
	return func(yield func(StatusValue[T], error) bool) {
		var (
			current    T
			currentErr error
			buffered   bool
			first      = true
		)
		for v, err := range i {
			if buffered {
				sv := StatusValue[T]{Value: current, Status: StatusOf(first, false)}
				if !yield(sv, currentErr) {
					return
				}
				first = false
			}
			current, currentErr, buffered = v, err, true
		}
		if buffered {
			yield(StatusValue[T]{Value: current, Status: StatusOf(first, true)}, currentErr)
		}
	}
}

// WithStatusPull wraps an iterkit.PullIter, and annotates each of its values with their Status.
func WithStatusPull[T any](i iterkit.PullIter[T]) *StatusPullIter[T] {
	return &StatusPullIter[T]{src: i}
}

type pullState int

const (
	notStarted pullState = iota
	running
	exhausted
)

// StatusPullIter is an iterkit.PullIter that yields the values of its source paired with their Status.
//
// It keeps exactly one value from the source buffered,
// so the source is always advanced one step further than what Next has made visible.
// When the source stops with an error, the value before the failure is not reported as Last,
// since the source did not end.
type StatusPullIter[T any] struct {
	src iterkit.PullIter[T]

	state  pullState
	peeked T
	first  bool
	value  StatusValue[T]
}

func (i *StatusPullIter[T]) Next() bool {
	switch i.state {
	case exhausted:
		return false
	case notStarted:
		if !i.pull() {
			i.state = exhausted
			return false
		}
		i.state = running
		i.first = true
	}

	current := i.peeked
	hasNext := i.pull()
	last := !hasNext && i.src.Err() == nil
	i.value = StatusValue[T]{Value: current, Status: StatusOf(i.first, last)}
	i.first = false
	if !hasNext {
		i.state = exhausted
	}
	return true
}

func (i *StatusPullIter[T]) pull() bool {
	if !i.src.Next() {
		var zero T
		i.peeked = zero
		return false
	}
	i.peeked = i.src.Value()
	return true
}

func (i *StatusPullIter[T]) Value() StatusValue[T] {
	return i.value
}

func (i *StatusPullIter[T]) Err() error {
	return i.src.Err()
}

func (i *StatusPullIter[T]) Close() error {
	i.state = exhausted
	return i.src.Close()
}
