package loopkit_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.llib.dev/splop/pkg/loopkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleSkipFirst() {
	var (
		comma loopkit.SkipFirst
		out   strings.Builder
	)
	for _, name := range []string{"peter", "ingrid", "barbara"} {
		comma.Do(func() { out.WriteString(", ") })
		out.WriteString(name)
	}
	fmt.Println(out.String())
	// Output: peter, ingrid, barbara
}

func ExampleSkipFirstFunc() {
	sf := loopkit.NewSkipFirst()
	for i := 1; i <= 3; i++ {
		v, ok := loopkit.SkipFirstFunc(sf, func() int { return i * 10 })
		fmt.Println(v, ok)
	}
	// Output:
	// 0 false
	// 20 true
	// 30 true
}

func TestSkipFirst(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) *loopkit.SkipFirst {
		return loopkit.NewSkipFirst()
	})

	s.Describe(".Do", func(s *testcase.Spec) {
		s.Test("the first call is skipped, every other call runs the action", func(t *testcase.T) {
			var (
				sf    = subject.Get(t)
				k     = t.Random.IntBetween(0, 42)
				calls int
			)
			for i := 0; i < k; i++ {
				ran := sf.Do(func() { calls++ })
				assert.Equal(t, i != 0, ran)
			}
			assert.Equal(t, max(k-1, 0), calls)
		})

		s.Test("the action is executed once per call", func(t *testcase.T) {
			sf := subject.Get(t)
			sf.Do(func() { t.Fatal("first call should be skipped") })

			var calls int
			assert.True(t, sf.Do(func() { calls++ }))
			assert.Equal(t, 1, calls)
		})

		s.Test("a panic in the action is propagated", func(t *testcase.T) {
			sf := subject.Get(t)
			sf.Do(func() {})
			assert.Panic(t, func() { sf.Do(func() { panic("boom") }) })
			assert.True(t, sf.Seen())
		})
	})

	s.Describe(".DoErr", func(s *testcase.Spec) {
		s.Test("skipped call returns nil", func(t *testcase.T) {
			sf := subject.Get(t)
			assert.NoError(t, sf.DoErr(func() error { return errors.New("boom") }))
		})

		s.Test("the action error is returned unchanged", func(t *testcase.T) {
			var (
				sf     = subject.Get(t)
				expErr = t.Random.Error()
			)
			assert.NoError(t, sf.DoErr(func() error { return expErr }))
			assert.True(t, sf.DoErr(func() error { return expErr }) == expErr)
		})
	})

	s.Describe(".Seen", func(s *testcase.Spec) {
		s.Test("the state flips once and stays", func(t *testcase.T) {
			sf := subject.Get(t)
			assert.False(t, sf.Seen())
			sf.Do(func() {})
			assert.True(t, sf.Seen())
			for i, n := 0, t.Random.IntBetween(1, 7); i < n; i++ {
				sf.Do(func() {})
				assert.True(t, sf.Seen())
			}
		})
	})

	s.Test("instances do not share state", func(t *testcase.T) {
		var (
			a, b loopkit.SkipFirst
			got  []string
		)
		a.Do(func() { got = append(got, "a") })
		b.Do(func() { got = append(got, "b") })
		b.Do(func() { got = append(got, "b2") })
		a.Do(func() { got = append(got, "a2") })
		assert.Equal(t, []string{"b2", "a2"}, got)
	})

	s.Test("separators are emitted between items only", func(t *testcase.T) {
		var (
			sep   loopkit.SkipFirst
			out   []string
			items = []string{"x", "y", "z"}
		)
		for _, item := range items {
			sep.Do(func() { out = append(out, "|") })
			out = append(out, item)
		}
		assert.Equal(t, []string{"x", "|", "y", "|", "z"}, out)
	})
}

func TestSkipFirstFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first call reports skipped with zero value", func(t *testcase.T) {
		sf := loopkit.NewSkipFirst()
		v, ok := loopkit.SkipFirstFunc(sf, func() string { return "ran" })
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	s.Test("later calls return the action's result", func(t *testcase.T) {
		var (
			sf  = loopkit.NewSkipFirst()
			exp = t.Random.String()
		)
		loopkit.SkipFirstFunc(sf, func() string { return "" })
		v, ok := loopkit.SkipFirstFunc(sf, func() string { return exp })
		assert.True(t, ok)
		assert.Equal(t, exp, v)
	})
}
