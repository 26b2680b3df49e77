// file: services/filter_service.go
package services

import (
	"strings"

	"github.com/vedantwankhade123/Roborace/models"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// FilterRegistrations narrows a feed snapshot by a free-text search term and a
// status selector. The search is a case-insensitive substring match against
// team name, leader name, college name and email; the status filter is an
// exact match unless "all" (or empty). The input slice is never mutated.
func FilterRegistrations(regs []models.Registration, search, status string) []models.Registration {
	result := regs
	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		filtered := make([]models.Registration, 0, len(result))
		for _, reg := range result {
			if strings.Contains(strings.ToLower(reg.TeamName), term) ||
				strings.Contains(strings.ToLower(reg.LeaderName), term) ||
				strings.Contains(strings.ToLower(reg.CollegeName), term) ||
				strings.Contains(strings.ToLower(reg.Email), term) {
				filtered = append(filtered, reg)
			}
		}
		result = filtered
	}
	if status != "" && status != StatusFilterAll {
		filtered := make([]models.Registration, 0, len(result))
		for _, reg := range result {
			if string(reg.Status) == status {
				filtered = append(filtered, reg)
			}
		}
		result = filtered
	}
	return result
}

// CountByStatus aggregates the per-status totals shown on the dashboard stats
// panel. Counted over the unfiltered snapshot, like the original panel.
func CountByStatus(regs []models.Registration) models.StatusCounts {
	counts := models.StatusCounts{Total: int64(len(regs))}
	for _, reg := range regs {
		switch reg.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusVerified:
			counts.Verified++
		case models.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}
