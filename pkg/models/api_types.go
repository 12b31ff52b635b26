package models

// LogFilter holds the optional equality filters accepted by the query API.
// Empty fields are not applied.
type LogFilter struct {
	NodeLocation string `json:"node_location,omitempty"`
	NodeType     string `json:"node_type,omitempty"`
	FlashStatus  string `json:"flash_status,omitempty"`
}

// LogPage is one page of session records plus pagination bookkeeping.
type LogPage struct {
	Logs       []*OTALog `json:"logs"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// LogFilterOptions lists the distinct values currently present for each
// filterable field, for client-side filter UI population.
type LogFilterOptions struct {
	NodeLocations []string `json:"node_locations"`
	NodeTypes     []string `json:"node_types"`
	FlashStatuses []string `json:"flash_statuses"`
}
