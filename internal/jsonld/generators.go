package jsonld

import (
	"housecash/internal/domain/entity"
)

const (
	// DefaultBaseURL is used when no site URL is configured.
	DefaultBaseURL = "https://webuyhousecash.com.au"

	defaultName        = "WeBuyHouseCash Melbourne"
	defaultDescription = "Sell your Melbourne house fast for cash. No fees, no repairs, no hassle."
)

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// HoursSpec groups the days that share one opening window.
type HoursSpec struct {
	Days   []string
	Opens  string
	Closes string
}

// FAQSchema builds an FAQPage.
func FAQSchema(faqs []entity.FAQ) Schema {
	questions := make([]Schema, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, newNode("Question").
			with("name", faq.Question).
			with("acceptedAnswer", newNode("Answer").with("text", faq.Answer)))
	}

	return newSchema("FAQPage").with("mainEntity", questions)
}

// BreadcrumbSchema builds a BreadcrumbList with 1-based positions.
func BreadcrumbSchema(items []BreadcrumbItem) Schema {
	elements := make([]Schema, 0, len(items))
	for i, item := range items {
		elements = append(elements, newNode("ListItem").
			with("position", i+1).
			with("name", item.Name).
			withString("item", item.URL))
	}

	return newSchema("BreadcrumbList").with("itemListElement", elements)
}

// HoursForSchema buckets open days by identical opens/closes pairs.
// Buckets follow the first appearance of each pair, not calendar order.
func HoursForSchema(hours entity.OpeningHours) []HoursSpec {
	if hours == nil {
		return nil
	}

	type window struct{ opens, closes string }

	specs := make([]HoursSpec, 0, len(hours))
	index := make(map[window]int, len(hours))

	for _, hour := range hours {
		if hour.IsClosed {
			continue
		}

		key := window{opens: hour.Opens, closes: hour.Closes}
		if i, ok := index[key]; ok {
			specs[i].Days = append(specs[i].Days, hour.Day)

			continue
		}

		index[key] = len(specs)
		specs = append(specs, HoursSpec{
			Days:   []string{hour.Day},
			Opens:  hour.Opens,
			Closes: hour.Closes,
		})
	}

	return specs
}

func openingHoursSpecification(hours entity.OpeningHours) []Schema {
	specs := HoursForSchema(hours)
	out := make([]Schema, 0, len(specs))
	for _, spec := range specs {
		out = append(out, newNode("OpeningHoursSpecification").
			with("dayOfWeek", spec.Days).
			with("opens", spec.Opens).
			with("closes", spec.Closes))
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
