package types

// 分页大小
const (
	RecipePageSize       = 6
	FavoritePageSize     = 9
	FollowPageSize       = 20
	NotificationPageSize = 20
	PublicCookbookLimit  = 6
	RecommendedLimit     = 4
)

// PageQuery ?page= 从 1 开始
type PageQuery struct {
	Page int `form:"page"`
}

func (p PageQuery) Normalize() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// Page 通用分页返回
type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasNext  bool  `json:"has_next"`
}

func NewPage[T any](list []T, total int64, page, size int) *Page[T] {
	if list == nil {
		list = make([]T, 0)
	}
	return &Page[T]{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: size,
		HasNext:  int64(page*size) < total,
	}
}
