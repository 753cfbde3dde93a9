package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindows(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page.Items)
	assert.Equal(t, int64(7), page.TotalItems)
	assert.Equal(t, int64(3), page.TotalPages)

	page = Paginate(items, 3, 3)
	assert.Equal(t, []int{7}, page.Items)
}

// page超出总页数返回空切片，不报错
func TestPaginateBeyondEnd(t *testing.T) {
	page := Paginate([]int{1, 2}, 9, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]int{}, 1, 10)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, int64(0), page.TotalPages)
}

// 不合法参数统一回落：page<1→1，pageSize<1→10，pageSize>100→100
func TestNormalize(t *testing.T) {
	page, size := Normalize(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = Normalize(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	_, size = Normalize(1, 1000)
	assert.Equal(t, 100, size)

	page, size = Normalize(2, 25)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, size)
}

// page大到(page-1)*pageSize在int32乘法里会溢出成负数，
// 窗口必须按空页处理而不是切片越界panic
func TestPaginateHugePageNoOverflow(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 144115188075855873, 100)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.TotalItems)

	page = Paginate(items, int(^uint(0)>>1), 100)
	assert.Empty(t, page.Items)
}

func TestPaginateExactBoundary(t *testing.T) {
	items := []int{1, 2, 3, 4}

	page := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page.Items)
	assert.Equal(t, int64(2), page.TotalPages)

	// 恰好下一页就越界
	page = Paginate(items, 3, 2)
	assert.Empty(t, page.Items)
}
