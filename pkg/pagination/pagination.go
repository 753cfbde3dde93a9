package pagination

// 分页窗口的默认值和上限。参数不合法时不报错，统一回落到默认值再夹紧，
// 这个策略在handler和service两层保持一致
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page 是一页已排序数据加上窗口元信息
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// Normalize 把任意输入夹紧成合法的(page, pageSize)
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Paginate 对一个已经排好序、过滤完的切片做窗口切分。
// page超出总页数时返回空items，不算错误
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	page, pageSize = Normalize(page, pageSize)

	total := int64(len(items))
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	// 先判断再做乘法：超大page直接按空页返回，
	// 避免(page-1)*pageSize溢出成负数导致切片越界
	if int64(page) > totalPages {
		return Page[T]{
			Items:      []T{},
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		}
	}
	start := int64(page-1) * int64(pageSize)
	end := start + int64(pageSize)
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
