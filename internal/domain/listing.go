package domain

// Listing is a property shown in the Properties section. Listings are
// opaque display content: the enquiry workflow only ever references them by
// name.
type Listing struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Area     string   `json:"area"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	ImageURL string   `json:"image_url"`
	Featured bool     `json:"featured"`
}

// SectionContent is the static copy for a content-only section.
type SectionContent struct {
	Section Section `json:"section"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
}

// SiteInfo is the display-only contact information rendered in the Contact
// section and the footer.
type SiteInfo struct {
	OfficeAddress string `json:"office_address"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	WebsiteURL    string `json:"website_url"`
	OfficeHours   string `json:"office_hours"`
}

// ListingUsecase serves the site's static presentation data.
type ListingUsecase interface {
	Listings() []Listing
	Featured() []Listing
	Content(section Section) (SectionContent, error)
	SiteInfo() SiteInfo
}
