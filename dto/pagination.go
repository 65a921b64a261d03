package dto

import (
	"strings"

	"github.com/nuam-exchange/taxrating-backend/models"
)

type Pagination struct {
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

func AdaptPagination(input Pagination) models.Pagination {
	return models.Pagination{
		Page:     input.Page,
		PageSize: input.PageSize,
		Order:    models.SortingOrder(strings.ToUpper(input.Order)),
	}
}

type Paginated[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func AdaptPaginatedDto[Model, Dto any](paged models.Paged[Model], adapt func(Model) Dto) Paginated[Dto] {
	items := make([]Dto, len(paged.Items))
	for i, item := range paged.Items {
		items[i] = adapt(item)
	}
	return Paginated[Dto]{
		Items: items,
		Total: paged.Total,
	}
}
