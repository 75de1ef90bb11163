package validator

import (
	"errors"

	"storefront/internal/domain/model"
)

var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidPageSize  = errors.New("pageSize must be between 1 and 100")
	ErrSearchTooLong    = errors.New("search term too long")
	ErrNegativePrice    = errors.New("price bounds must be >= 0")
	ErrInvertedPrice    = errors.New("minPrice must be <= maxPrice")
	ErrInvalidMinRating = errors.New("minRating must be between 0 and 5")
	ErrInvalidSort      = errors.New("invalid sort")
)

const maxSearchLength = 100

// 一覧リクエストのフィルタ状態を検証する
func ValidateFilter(state model.FilterState) error {
	if state.Page < 1 {
		return ErrInvalidPage
	}
	if state.PageSize < 1 || state.PageSize > 100 {
		return ErrInvalidPageSize
	}
	if len(state.Search) > maxSearchLength {
		return ErrSearchTooLong
	}
	if state.MinPrice != nil && *state.MinPrice < 0 {
		return ErrNegativePrice
	}
	if state.MaxPrice != nil && *state.MaxPrice < 0 {
		return ErrNegativePrice
	}
	if state.MinPrice != nil && state.MaxPrice != nil && *state.MinPrice > *state.MaxPrice {
		return ErrInvertedPrice
	}
	if state.MinRating < 0 || state.MinRating > 5 {
		return ErrInvalidMinRating
	}
	switch state.SortField {
	case "", model.SortDefault, model.SortPrice, model.SortTitle, model.SortRating:
	default:
		return ErrInvalidSort
	}
	switch state.SortDirection {
	case "", model.SortAsc, model.SortDesc:
	default:
		return ErrInvalidSort
	}
	return nil
}
