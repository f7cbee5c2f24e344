// Package status holds the pure aggregation functions behind the status board:
// worst-status reduction, category grouping and the dashboard breakdowns. All
// functions treat their input as read-only and are deterministic for a given
// input.
package status

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/phoopyae1/OSS/pkg/types"
)

// DefaultCategory is assigned to services whose category is absent or blank
// after trimming.
const DefaultCategory = "General"

// collator pins grouping order to the English collation so output does not
// depend on the host locale.
var collator = collate.New(language.English)

// Overall returns the worst status present in services, or OPERATIONAL for an
// empty list.
func Overall(services []types.Service) types.Status {
	overall := types.StatusOperational
	worst := overall.Rank()
	for _, service := range services {
		if rank := service.Status.Rank(); rank > worst {
			worst = rank
			overall = service.Status
		}
	}
	return overall
}

// Group is one category of the status board with its services in display
// order.
type Group struct {
	Category string          `json:"category"`
	Items    []types.Service `json:"items"`
}

// CategoryOf returns the trimmed category of a service, falling back to
// DefaultCategory when absent or blank.
func CategoryOf(service types.Service) string {
	if service.Category == nil {
		return DefaultCategory
	}
	category := strings.TrimSpace(*service.Category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// GroupByCategory partitions services by category, ordering items within each
// group by name and the groups themselves by category name, both ascending
// under the English collation. Sorting is stable, so services with equal names
// keep their input order.
func GroupByCategory(services []types.Service) []Group {
	grouped := map[string][]types.Service{}
	order := []string{}
	for _, service := range services {
		category := CategoryOf(service)
		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], service)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return collator.CompareString(order[i], order[j]) < 0
	})

	groups := make([]Group, 0, len(order))
	for _, category := range order {
		items := grouped[category]
		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Name, items[j].Name) < 0
		})
		groups = append(groups, Group{Category: category, Items: items})
	}
	return groups
}

// Counts is a status histogram over a service list.
type Counts struct {
	Total    int                  `json:"total"`
	ByStatus map[types.Status]int `json:"byStatus"`
}

// Histogram counts services per status value, plus the total.
func Histogram(services []types.Service) Counts {
	counts := Counts{ByStatus: map[types.Status]int{}}
	for _, service := range services {
		counts.Total++
		counts.ByStatus[service.Status]++
	}
	return counts
}

// Down returns the services in a hard outage state.
func Down(services []types.Service) []types.Service {
	down := []types.Service{}
	for _, service := range services {
		if service.Status == types.StatusPartialOutage || service.Status == types.StatusMajorOutage {
			down = append(down, service)
		}
	}
	return down
}

// NeedsAttention returns every service that is not fully operational.
func NeedsAttention(services []types.Service) []types.Service {
	attention := []types.Service{}
	for _, service := range services {
		if service.Status != types.StatusOperational {
			attention = append(attention, service)
		}
	}
	return attention
}
