package slicesx_test

import (
	"strconv"
	"testing"

	testingx "github.com/octohelm/x/testing"

	"github.com/osteele/go-extras/pkg/slicesx"
)

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	testingx.Expect(t, slicesx.Filter([]int{1, 2, 3, 4, 5}, even), testingx.Equal([]int{2, 4}))
	testingx.Expect(t, slicesx.Filter([]int(nil), even), testingx.Equal([]int{}))
}

func TestMapTo(t *testing.T) {
	got := slicesx.MapTo([]int{1, 2, 3}, strconv.Itoa)
	testingx.Expect(t, got, testingx.Equal([]string{"1", "2", "3"}))
}

func TestChunk(t *testing.T) {
	testingx.Expect(t, slicesx.Chunk([]int{1, 2, 3, 4, 5}, 2), testingx.Equal([][]int{{1, 2}, {3, 4}, {5}}))
	testingx.Expect(t, slicesx.Chunk([]int{1, 2}, 3), testingx.Equal([][]int{{1, 2}}))
	testingx.Expect(t, slicesx.Chunk([]int{1, 2}, 0), testingx.Equal[[][]int](nil))
}

func TestUniq(t *testing.T) {
	testingx.Expect(t, slicesx.Uniq([]string{"a", "b", "a", "c", "b"}), testingx.Equal([]string{"a", "b", "c"}))
}

func TestFind(t *testing.T) {
	big := func(n int) bool { return n > 2 }

	testingx.Expect(t, slicesx.Find([]int{1, 2, 3, 4}, big).MustGet(), testingx.Be(3))
	testingx.Expect(t, slicesx.Find([]int{1, 2}, big).IsNone(), testingx.Be(true))
}
