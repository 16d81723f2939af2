package persistence

import "strings"

// Sort fields arrive as raw query-string values and end up concatenated
// into ORDER BY clauses, so they are validated against per-entity
// whitelists instead of being escaped.

// ValidateSortOrder normalizes a sort direction. Anything other than "asc"
// (in any casing) becomes DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns the candidate column if the whitelist allows
// it, otherwise defaultField.
func ValidateSortField(sortField string, allowed map[string]bool, defaultField string) string {
	candidate := strings.TrimSpace(sortField)
	if allowed[candidate] {
		return candidate
	}
	return defaultField
}

// UserSortFields lists the sortable columns of the users table.
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"username":      true,
	"email":         true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}

// StudentSortFields lists the sortable columns of the students table.
var StudentSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"roll_number":    true,
	"email":          true,
	"current_status": true,
	"total_offers":   true,
}

// CompanySortFields lists the sortable columns of the company drives table.
var CompanySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"company_name":  true,
	"year":          true,
	"status":        true,
	"total_applied": true,
	"total_placed":  true,
}
