package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Pablo751/3mchatbot/internal/chatbot"
	"github.com/Pablo751/3mchatbot/internal/storage"
)

// DailyStats aggregates one day of recorded interactions.
type DailyStats struct {
	Date            string              `json:"date"`
	TotalQueries    int                 `json:"total_queries"`
	UniqueUsers     int                 `json:"unique_users"`
	Matched         int                 `json:"matched"`
	NoMatch         int                 `json:"no_match"`
	TransportErrors int                 `json:"transport_errors"`
	ProductCounts   map[string]int      `json:"product_counts"`
	UserStats       map[int64]UserStats `json:"user_stats"`
}

type UserStats struct {
	UserID  int64 `json:"user_id"`
	Queries int   `json:"queries"`
	Matched int   `json:"matched"`
}

// AnalyzeDailyLogs filters events to the given calendar day and aggregates
// query volume, match rate and per-product interest.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:          startOfDay.Format("2006-01-02"),
		ProductCounts: make(map[string]int),
		UserStats:     make(map[int64]UserStats),
	}

	uniqueUsers := make(map[int64]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		if event.UserMessage == "" {
			continue
		}

		stats.TotalQueries++
		uniqueUsers[event.UserID] = true

		userStat := stats.UserStats[event.UserID]
		userStat.UserID = event.UserID
		userStat.Queries++

		switch chatbot.SelectionOutcome(event.SelectionOutcome) {
		case chatbot.SelectionMatched:
			stats.Matched++
			userStat.Matched++
			if event.ProductName != "" {
				stats.ProductCounts[event.ProductName]++
			}
		case chatbot.SelectionTransportError:
			stats.TransportErrors++
		default:
			stats.NoMatch++
		}

		stats.UserStats[event.UserID] = userStat
	}

	stats.UniqueUsers = len(uniqueUsers)
	return stats
}

// GenerateReportSummary renders the stats as the plain-text message sent
// to the admin (Spanish, like the rest of the user-facing text).
func (ds *DailyStats) GenerateReportSummary() string {
	summary := fmt.Sprintf(`Resumen del asistente dental 3M — %s

Actividad:
- Consultas totales: %d
- Usuarios únicos: %d
- Con producto identificado: %d
- Sin coincidencia: %d
- Errores de API: %d

`, ds.Date, ds.TotalQueries, ds.UniqueUsers, ds.Matched, ds.NoMatch, ds.TransportErrors)

	if len(ds.ProductCounts) > 0 {
		summary += "Productos más consultados:\n"
		type pc struct {
			name  string
			count int
		}
		var products []pc
		for name, count := range ds.ProductCounts {
			products = append(products, pc{name, count})
		}
		sort.Slice(products, func(i, j int) bool {
			if products[i].count != products[j].count {
				return products[i].count > products[j].count
			}
			return products[i].name < products[j].name
		})
		for _, p := range products {
			summary += fmt.Sprintf("- %s: %d consultas\n", p.name, p.count)
		}
	}

	return summary
}

// ToJSON serializes the stats for detailed inspection.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
