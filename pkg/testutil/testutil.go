// Package testutil holds test-framework conveniences shared by this
// module's tests: a generic table-case runner and a panic assertion.
package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/onsi/gomega"
)

// Case pairs an input with the output the function under test must produce.
type Case[I any, O any] struct {
	Name string
	In   I
	Want O
}

// Run executes fn against every case as its own subtest. Unnamed cases are
// labeled with their input; failures dump the whole case with spew.
func Run[I any, O any](t *testing.T, fn func(I) O, cases []Case[I, O]) {
	t.Helper()

	for _, c := range cases {
		name := c.Name
		if name == "" {
			name = spew.Sprintf("%v", c.In)
		}

		t.Run(name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(fn(c.In)).To(gomega.Equal(c.Want), spew.Sdump(c))
		})
	}
}

// ExpectPanic fails the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()

	g := gomega.NewWithT(t)
	g.Expect(fn).To(gomega.Panic())
}
