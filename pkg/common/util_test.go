package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapperReducerFilter(t *testing.T) {
	lengths := Mapper([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2, 3}, lengths)

	sum := Reducer(lengths, func(acc int, n int) int { return acc + n }, 0)
	assert.Equal(t, 6, sum)

	odd := Filter(lengths, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3}, odd)
	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"ident", "hostname"}, SplitList("ident,hostname"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList(" a, ,b ,,c"))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , "))
}
