package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"role":       true,
	"active":     true,
}

// TagSortFields contains allowed sort fields for tags
var TagSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"domain":     true,
	"name":       true,
	"sort_order": true,
	"active":     true,
}

// ApprovalSortFields contains allowed sort fields for approvals
var ApprovalSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"status":      true,
	"resolved_at": true,
}

// ContactSortFields contains allowed sort fields for contacts
var ContactSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"company":    true,
	"email":      true,
}

// AttachmentSortFields contains allowed sort fields for attachments
var AttachmentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"file_name":  true,
	"file_size":  true,
	"status":     true,
}

// GrossIncomeSortFields contains allowed sort fields for gross income entries
var GrossIncomeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"year":       true,
	"month":      true,
	"amount":     true,
	"concept":    true,
}

// AuditSortFields contains allowed sort fields for audits
var AuditSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"starts_on":  true,
	"ends_on":    true,
}

// ProjectSortFields contains allowed sort fields for projects
var ProjectSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"code":       true,
	"active":     true,
}

// LicenseSortFields contains allowed sort fields for licenses
var LicenseSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"vendor":       true,
	"seats":        true,
	"cost":         true,
	"purchased_on": true,
	"expires_on":   true,
}

// AdPieceSortFields contains allowed sort fields for ad pieces
var AdPieceSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"campaign":   true,
	"publish_on": true,
}

// MeetingSortFields contains allowed sort fields for meetings
var MeetingSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"starts_at":  true,
	"ends_at":    true,
}

// AttendanceSortFields contains allowed sort fields for attendance records
var AttendanceSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"date":       true,
	"check_in":   true,
	"check_out":  true,
}

// ContractSortFields contains allowed sort fields for employment contracts
var ContractSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"role_title": true,
	"starts_on":  true,
	"ends_on":    true,
	"salary":     true,
}

// InterviewSortFields contains allowed sort fields for interviews
var InterviewSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"candidate_name": true,
	"position":       true,
	"scheduled_at":   true,
	"score":          true,
}

// KitSortFields contains allowed sort fields for kits
var KitSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"delivered_on": true,
	"returned_on":  true,
}

// OffboardingSortFields contains allowed sort fields for offboardings
var OffboardingSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"exit_date":  true,
}
