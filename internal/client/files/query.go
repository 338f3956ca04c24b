package files

import (
	"net/url"
	"strconv"
	"strings"
)

// Значения по умолчанию
const (
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
	DefaultPageSize  = 10
)

// Query параметры запроса списка файлов
type Query struct {
	Search    string
	FileType  string
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// DefaultQuery возвращает запрос без фильтров: новые файлы первыми, страница 1 по 10
func DefaultQuery() Query {
	return Query{
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// normalize подставляет значения по умолчанию вместо пустых и некорректных.
// Фильтры из одних пробелов считаются пустыми.
func (q Query) normalize() Query {
	q.FileType = strings.TrimSpace(q.FileType)
	q.StartDate = strings.TrimSpace(q.StartDate)
	q.EndDate = strings.TrimSpace(q.EndDate)
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = DefaultSortOrder
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// filtersEqual сравнивает все поля, кроме номера страницы
func (q Query) filtersEqual(o Query) bool {
	q.Page, o.Page = 0, 0
	return q == o
}

// Params строит параметры GET /files. Пустые фильтры не передаются.
func (q Query) Params() url.Values {
	q = q.normalize()
	params := url.Values{}

	if s := strings.TrimSpace(q.Search); s != "" {
		params.Set("search", s)
	}
	if q.FileType != "" {
		params.Set("file_type", q.FileType)
	}
	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}
	params.Set("sort_by", q.SortBy)
	params.Set("order", q.SortOrder)
	params.Set("skip", strconv.Itoa((q.Page-1)*q.PageSize))
	params.Set("limit", strconv.Itoa(q.PageSize))

	return params
}

// Pagination состояние переключателя страниц
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Visible    bool // false, если страниц нет
	First      bool // доступны ли соответствующие переходы
	Prev       bool
	Next       bool
	Last       bool
}

// TotalPages возвращает ceil(total/pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate вычисляет доступность переходов для страницы
func Paginate(page, pageSize, total int) Pagination {
	pages := TotalPages(total, pageSize)
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: pages,
		Visible:    pages > 0,
		First:      page > 1,
		Prev:       page > 1,
		Next:       page < pages,
		Last:       page < pages,
	}
}
