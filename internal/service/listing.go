package service

import (
	"sort"
	"strings"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListParams contém os parâmetros de busca, ordenação e paginação das listagens
type ListParams struct {
	Query     string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Term retorna o termo de busca normalizado
func (p ListParams) Term() string {
	return strings.ToLower(strings.TrimSpace(p.Query))
}

// Descending indica se a ordenação é decrescente
func (p ListParams) Descending() bool {
	return strings.EqualFold(p.SortOrder, "desc")
}

// Page é uma página de resultados
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// sortKeys mapeia o nome do campo de ordenação para a comparação correspondente
type sortKeys[T any] map[string]func(a, b T) int

// filter retorna uma cópia com os itens que correspondem ao termo de busca
func filter[T any](items []T, term string, matches func(T, string) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if term == "" || matches(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// order ordena os itens pelo campo pedido. Campos desconhecidos mantêm a
// ordem recebida do backend.
func order[T any](items []T, keys sortKeys[T], params ListParams) {
	compare, ok := keys[params.SortBy]
	if !ok {
		return
	}
	desc := params.Descending()
	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// paginate recorta a página pedida. Valores inválidos usam página 1 com 10 itens.
func paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	} else if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// list aplica busca, ordenação e paginação
func list[T any](items []T, params ListParams, matches func(T, string) bool, keys sortKeys[T]) Page[T] {
	filtered := filter(items, params.Term(), matches)
	order(filtered, keys, params)
	return paginate(filtered, params.Page, params.PageSize)
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
