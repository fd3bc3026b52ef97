package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordSetter() (*[]int, func(int)) {
	var calls []int
	return &calls, func(p int) { calls = append(calls, p) }
}

func TestControl_Bounds(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		current int
		prev    bool
		next    bool
	}{
		{"first page", 5, 1, false, true},
		{"last page", 5, 5, true, false},
		{"middle", 5, 3, true, true},
		{"single page", 1, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Render(tc.total, tc.current, func(int) {})
			assert.Equal(t, tc.prev, c.PrevEnabled())
			assert.Equal(t, tc.next, c.NextEnabled())
		})
	}
}

func TestControl_ForwardsIntent(t *testing.T) {
	calls, set := recordSetter()
	c := Render(5, 3, set)

	assert.NoError(t, c.Prev())
	assert.NoError(t, c.Next())
	assert.NoError(t, c.Go(5))
	assert.Equal(t, []int{2, 4, 5}, *calls)
	assert.Equal(t, 3, c.Current, "control never mutates page state")
}

func TestControl_RejectsOutOfRange(t *testing.T) {
	calls, set := recordSetter()

	assert.ErrorIs(t, Render(5, 1, set).Prev(), ErrPageOutOfRange)
	assert.ErrorIs(t, Render(5, 5, set).Next(), ErrPageOutOfRange)
	assert.ErrorIs(t, Render(5, 2, set).Go(0), ErrPageOutOfRange)
	assert.ErrorIs(t, Render(5, 2, set).Go(6), ErrPageOutOfRange)
	assert.Empty(t, *calls)
}

func TestControl_Pages(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Render(10, 1, nil).Pages(5))
	assert.Equal(t, []int{4, 5, 6, 7, 8}, Render(10, 6, nil).Pages(5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, Render(10, 10, nil).Pages(5))
	assert.Equal(t, []int{1, 2}, Render(2, 1, nil).Pages(5))
	assert.Nil(t, Render(0, 1, nil).Pages(5))
}

func TestTotalPagesAndNormalize(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))

	page, perPage := Normalize(0, 0, 20, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, perPage)

	_, perPage = Normalize(2, 500, 20, 100)
	assert.Equal(t, 100, perPage)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Slice(items, 1, 2))
	assert.Equal(t, []int{5}, Slice(items, 3, 2))
	assert.Equal(t, []int{}, Slice(items, 4, 2))
}

func TestNewInfo(t *testing.T) {
	info := NewInfo(2, 10, 35)
	assert.Equal(t, 4, info.TotalPages)
	assert.Equal(t, 2, info.Page)

	meta := NewMeta(1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
