package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListOptions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ListOptions
	}{
		{
			name:  "пустой запрос — значения по умолчанию",
			query: "",
			want:  ListOptions{SortMode: "updated_desc"},
		},
		{
			name:  "все параметры заданы",
			query: "includeArchived=true&sort=status_ops&limit=50",
			want:  ListOptions{IncludeArchived: true, SortMode: "status_ops", Limit: 50},
		},
		{
			name:  "неизвестная сортировка молча заменяется дефолтной",
			query: "sort=by_magic",
			want:  ListOptions{SortMode: "updated_desc"},
		},
		{
			name:  "кривые includeArchived и limit игнорируются",
			query: "includeArchived=да&limit=-5",
			want:  ListOptions{SortMode: "updated_desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParseListOptions(values))
		})
	}
}
