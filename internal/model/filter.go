package model

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

type SortColumn string

const (
	SortByUserName         SortColumn = "user_name"
	SortByCompanyName      SortColumn = "company_name"
	SortByInquiryCreatedAt SortColumn = "inquiry_created_at"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// InquiryFilter is the validated set of optional query parameters shared by
// the aggregate and paginated endpoints. The zero filter matches everything.
type InquiryFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	GroupBy   GroupBy
	Types     []InquiryType
	Statuses  []InquiryStatus
	Search    string
	SortBy    SortColumn
	SortOrder SortOrder
	Page      int
	Limit     int
}

func (f InquiryFilter) Offset() int { return (f.Page - 1) * f.Limit }

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid query parameters: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ParseInquiryFilter validates the recognized query parameters and applies
// defaults. Unknown parameters are ignored. Limit values above MaxPageSize
// are clamped, not rejected.
func ParseInquiryFilter(values url.Values) (InquiryFilter, error) {
	filter := InquiryFilter{
		GroupBy:   GroupByDay,
		SortBy:    SortByInquiryCreatedAt,
		SortOrder: SortDesc,
		Page:      1,
		Limit:     DefaultPageSize,
	}
	verr := &ValidationError{}

	if raw := strings.TrimSpace(values.Get("dateFrom")); raw != "" {
		if parsed, err := parseDate(raw); err != nil {
			verr.add("dateFrom", "must be an ISO date")
		} else {
			filter.DateFrom = &parsed
		}
	}
	if raw := strings.TrimSpace(values.Get("dateTo")); raw != "" {
		if parsed, err := parseDate(raw); err != nil {
			verr.add("dateTo", "must be an ISO date")
		} else {
			filter.DateTo = &parsed
		}
	}

	if raw := strings.TrimSpace(values.Get("groupBy")); raw != "" {
		switch GroupBy(strings.ToLower(raw)) {
		case GroupByDay, GroupByWeek, GroupByMonth:
			filter.GroupBy = GroupBy(strings.ToLower(raw))
		default:
			verr.add("groupBy", "must be one of day, week, month")
		}
	}

	if raw := strings.TrimSpace(values.Get("inquiryType")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			t := InquiryType(strings.TrimSpace(part))
			if !t.Valid() {
				verr.add("inquiryType", fmt.Sprintf("unknown type %q", part))
				continue
			}
			filter.Types = append(filter.Types, t)
		}
	}
	if raw := strings.TrimSpace(values.Get("inquiryStatus")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			s := InquiryStatus(strings.TrimSpace(part))
			if !s.Valid() {
				verr.add("inquiryStatus", fmt.Sprintf("unknown status %q", part))
				continue
			}
			filter.Statuses = append(filter.Statuses, s)
		}
	}

	filter.Search = strings.TrimSpace(values.Get("search"))

	if raw := strings.TrimSpace(values.Get("sortBy")); raw != "" {
		switch SortColumn(raw) {
		case SortByUserName, SortByCompanyName, SortByInquiryCreatedAt:
			filter.SortBy = SortColumn(raw)
		default:
			verr.add("sortBy", "must be one of user_name, company_name, inquiry_created_at")
		}
	}
	if raw := strings.TrimSpace(values.Get("sortOrder")); raw != "" {
		switch SortOrder(strings.ToLower(raw)) {
		case SortAsc, SortDesc:
			filter.SortOrder = SortOrder(strings.ToLower(raw))
		default:
			verr.add("sortOrder", "must be asc or desc")
		}
	}

	filter.Page, filter.Limit = parsePageParams(values, verr)

	if len(verr.Fields) > 0 {
		return InquiryFilter{}, verr
	}
	return filter, nil
}

// ParsePageParams validates the page and limit parameters on their own, for
// endpoints that paginate without the full inquiry filter. Defaults and the
// MaxPageSize clamp match ParseInquiryFilter.
func ParsePageParams(values url.Values) (int, int, error) {
	verr := &ValidationError{}
	page, limit := parsePageParams(values, verr)
	if len(verr.Fields) > 0 {
		return 0, 0, verr
	}
	return page, limit, nil
}

func parsePageParams(values url.Values, verr *ValidationError) (int, int) {
	page := 1
	limit := DefaultPageSize

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			verr.add("page", "must be a positive integer")
		} else {
			page = parsed
		}
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		switch {
		case err != nil || parsed < 1:
			verr.add("limit", "must be a positive integer")
		case parsed > MaxPageSize:
			limit = MaxPageSize
		default:
			limit = parsed
		}
	}

	return page, limit
}

func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
