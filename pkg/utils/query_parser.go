package utils

import (
	"net/url"
	"strconv"

	"equipment-tracker/pkg/constants"
)

// ListOptions — параметры выборки списка оборудования.
type ListOptions struct {
	IncludeArchived bool
	SortMode        string
	Limit           int
}

// ParseListOptions разбирает query-параметры списка:
// ?includeArchived=true&sort=status_ops&limit=50.
// Неизвестный режим сортировки молча заменяется на режим по умолчанию,
// чтобы кривой запрос фронта не ронял список.
func ParseListOptions(values url.Values) ListOptions {
	opts := ListOptions{
		SortMode: constants.DefaultSortMode,
	}

	if v := values.Get("includeArchived"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.IncludeArchived = b
		}
	}

	if mode := values.Get("sort"); mode != "" && constants.IsValidSortMode(mode) {
		opts.SortMode = mode
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			opts.Limit = l
		}
	}

	return opts
}
