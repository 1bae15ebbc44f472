package entity

// PageType selects which structured data a page carries.
type PageType string

const (
	PageTypeHome    PageType = "home"
	PageTypeFAQ     PageType = "faq"
	PageTypeAbout   PageType = "about"
	PageTypeContact PageType = "contact"
	PageTypeBlog    PageType = "blog"
	PageTypeService PageType = "service"
	PageTypeDefault PageType = "default"
)

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ServiceArea is a named region and the suburbs it covers.
type ServiceArea struct {
	Region  string   `json:"region"`
	Suburbs []string `json:"suburbs"`
}

// AdminUser is the identity carried by an admin session.
type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
