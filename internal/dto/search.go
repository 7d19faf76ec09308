package dto

import "time"

// SearchFilters are the optional, AND-combined predicates of the search
// endpoint. Nil/empty means "no constraint" on that field.
type SearchFilters struct {
	Name     string
	Location string
	AgeMin   *int
	AgeMax   *int
	Gender   string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}

type SearchResponse struct {
	Results    []MissingPersonResponse `json:"results"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	PerPage    int                     `json:"per_page"`
	TotalPages int                     `json:"total_pages"`
}

type StatisticsResponse struct {
	Total   int64 `json:"total"`
	Missing int64 `json:"missing"`
	Found   int64 `json:"found"`
	Closed  int64 `json:"closed"`
}
