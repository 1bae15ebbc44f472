// Package content holds the fixed copy rendered on public pages.
package content

import "housecash/internal/domain/entity"

// FAQs backs the FAQ page and its FAQPage schema.
func FAQs() []entity.FAQ {
	return []entity.FAQ{
		{
			Question: "How quickly can you buy my house?",
			Answer:   "We can typically close in as little as 7 days, depending on your situation and needs.",
		},
		{
			Question: "Do I need to make repairs before selling?",
			Answer:   "No, we buy houses in any condition. You don't need to make any repairs or improvements.",
		},
		{
			Question: "Are there any fees or commissions?",
			Answer:   "No, there are no fees or commissions. The offer we make is the amount you receive.",
		},
		{
			Question: "How does the process work?",
			Answer:   "First, contact us with your property details. We'll make you a fair cash offer within 24 hours. If you accept, we can close on your timeline, often in as little as 7 days.",
		},
		{
			Question: "What types of properties do you buy?",
			Answer:   "We buy all types of residential properties in Melbourne, including single-family homes, duplexes, townhouses, condos, and multi-family units.",
		},
	}
}

// ServiceAreas lists the regions on the areas-we-serve page in display order.
func ServiceAreas() []entity.ServiceArea {
	return []entity.ServiceArea{
		{Region: "Northern Suburbs", Suburbs: []string{
			"Brunswick", "Coburg", "Northcote", "Preston", "Reservoir", "Thornbury",
			"Bundoora", "Epping", "Lalor", "Mill Park", "South Morang", "Thomastown",
		}},
		{Region: "Eastern Suburbs", Suburbs: []string{
			"Balwyn", "Box Hill", "Camberwell", "Doncaster", "Hawthorn", "Kew",
			"Ringwood", "Blackburn", "Mitcham", "Croydon", "Burwood", "Glen Waverley",
		}},
		{Region: "Southern Suburbs", Suburbs: []string{
			"Brighton", "Elsternwick", "St Kilda", "Caulfield", "Bentleigh", "Hampton",
			"Sandringham", "Cheltenham", "Mentone", "Parkdale", "Mordialloc", "Aspendale",
		}},
		{Region: "Western Suburbs", Suburbs: []string{
			"Footscray", "Yarraville", "Seddon", "Williamstown", "Newport", "Altona",
			"Sunshine", "St Albans", "Deer Park", "Caroline Springs", "Werribee", "Point Cook",
		}},
		{Region: "Inner City", Suburbs: []string{
			"Melbourne CBD", "Southbank", "Docklands", "Carlton", "Fitzroy", "Collingwood",
			"Richmond", "South Yarra", "Prahran", "Windsor", "Port Melbourne", "Albert Park",
		}},
		{Region: "Bayside", Suburbs: []string{
			"Brighton", "Elwood", "Hampton", "Sandringham", "Black Rock", "Beaumaris",
			"Cheltenham", "Mentone", "Parkdale", "Mordialloc", "Chelsea", "Carrum",
		}},
	}
}

// FallbackTestimonials fills the home page before any have been entered.
func FallbackTestimonials() []*entity.Testimonial {
	return []*entity.Testimonial{
		{
			Name:     "John Smith",
			Location: "Richmond",
			Content:  "I needed to sell my house quickly after a divorce. WeBuyHouseCash made it easy and stress-free. I got a fair offer and closed in just 9 days!",
			Rating:   5,
		},
		{
			Name:     "Sarah Johnson",
			Location: "St Kilda",
			Content:  "My inherited property needed major repairs I couldn't afford. These guys bought it as-is and handled everything. No repairs, no hassle.",
			Rating:   5,
		},
		{
			Name:     "Michael Brown",
			Location: "Brunswick",
			Content:  "I was facing foreclosure and needed to sell fast. WeBuyHouseCash came through with a cash offer that helped me get out of a tough situation. So grateful!",
			Rating:   4,
		},
	}
}
