package maybe_test

import (
	"strconv"
	"testing"

	testingx "github.com/octohelm/x/testing"

	"github.com/osteele/go-extras/pkg/maybe"
	"github.com/osteele/go-extras/pkg/testutil"
)

func TestMaybe(t *testing.T) {
	t.Run("zero value is None", func(t *testing.T) {
		var m maybe.Maybe[int]
		testingx.Expect(t, m.IsNone(), testingx.Be(true))
		testingx.Expect(t, m.OrElse(42), testingx.Be(42))
	})

	t.Run("Some holds its value", func(t *testing.T) {
		m := maybe.Some("x")
		v, ok := m.Get()
		testingx.Expect(t, ok, testingx.Be(true))
		testingx.Expect(t, v, testingx.Be("x"))
		testingx.Expect(t, m.OrElse("y"), testingx.Be("x"))
	})

	t.Run("FromPtr", func(t *testing.T) {
		testingx.Expect(t, maybe.FromPtr[int](nil).IsNone(), testingx.Be(true))

		n := 3
		testingx.Expect(t, maybe.FromPtr(&n).MustGet(), testingx.Be(3))
	})

	t.Run("Ptr", func(t *testing.T) {
		testingx.Expect(t, maybe.None[int]().Ptr(), testingx.Be[*int](nil))

		p := maybe.Some(7).Ptr()
		testingx.Expect(t, *p, testingx.Be(7))
	})

	t.Run("MustGet panics on None", func(t *testing.T) {
		testutil.ExpectPanic(t, func() {
			maybe.None[string]().MustGet()
		})
	})
}

func TestMapBind(t *testing.T) {
	itoa := func(n int) string { return strconv.Itoa(n) }

	testingx.Expect(t, maybe.Map(maybe.Some(12), itoa).MustGet(), testingx.Be("12"))
	testingx.Expect(t, maybe.Map(maybe.None[int](), itoa).IsNone(), testingx.Be(true))

	half := func(n int) maybe.Maybe[int] {
		if n%2 != 0 {
			return maybe.None[int]()
		}
		return maybe.Some(n / 2)
	}

	testingx.Expect(t, maybe.Bind(maybe.Some(12), half).MustGet(), testingx.Be(6))
	testingx.Expect(t, maybe.Bind(maybe.Some(13), half).IsNone(), testingx.Be(true))
	testingx.Expect(t, maybe.Bind(maybe.None[int](), half).IsNone(), testingx.Be(true))
}
