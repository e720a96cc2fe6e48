package usecase

import (
	"fmt"

	"go-landdeals-backend/config"
	"go-landdeals-backend/internal/domain"
)

// catalog is the static listing inventory shown in the Properties section.
// Listings are display content; the enquiry workflow references them by
// name only.
var catalog = []domain.Listing{
	{
		Name:     "Mountain View Plots",
		Location: "Shimla, Himachal Pradesh",
		Price:    "Starting from ₹25 Lakhs",
		Features: []string{"Panoramic mountain views", "Gated community", "24/7 security"},
		ImageURL: "https://images.unsplash.com/photo-1600585154340-be6161a56a0c",
		Featured: true,
	},
	{
		Name:     "Riverside Land Parcels",
		Location: "Kullu, Himachal Pradesh",
		Price:    "Starting from ₹35 Lakhs",
		Features: []string{"Adjacent to river", "Lush green surroundings", "Peaceful environment"},
		ImageURL: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c",
		Featured: true,
	},
	{
		Name:     "Premium Hilltop Land - Shimla",
		Location: "Shimla, Himachal Pradesh",
		Area:     "5-10 Acres available",
		Price:    "₹30 Lakhs - ₹50 Lakhs per acre",
		Features: []string{
			"Breathtaking valley views",
			"All-weather road connectivity",
			"Clear titles with proper documentation",
			"Ideal for resort or farmhouse",
		},
		ImageURL: "https://images.unsplash.com/photo-1580587771525-78b9dba3b914",
	},
	{
		Name:     "Forest Facing Plots - Manali",
		Location: "Manali, Himachal Pradesh",
		Area:     "2400-5000 sq.ft. plots",
		Price:    "₹2000-₹2500 per sq.ft.",
		Features: []string{
			"Dense deodar forest view",
			"Gated community",
			"Water and electricity connections",
			"10 minutes from Manali Mall Road",
		},
		ImageURL: "https://images.unsplash.com/photo-1600566752225-7a0c8b5c1b5f",
	},
}

var sectionCopy = map[domain.Section]domain.SectionContent{
	domain.SectionHome: {
		Section: domain.SectionHome,
		Title:   "Himachal Land Deals",
		Body: "Your Trusted Partner for Premium Land Deals in Himachal Pradesh. " +
			"Discover the most beautiful and valuable land properties in the serene " +
			"landscapes of Himachal Pradesh. Whether you're looking for a peaceful " +
			"retreat, an investment opportunity, or your dream home location, we " +
			"have the perfect piece of land for you.",
	},
	domain.SectionAbout: {
		Section: domain.SectionAbout,
		Title:   "About Us",
		Body: "Established in 2010, Himachal Land Deals has been a trusted name in " +
			"the real estate sector of Himachal Pradesh. With over a decade of " +
			"experience, we have helped hundreds of clients find their dream " +
			"properties in the lap of the Himalayas. 12+ years of experience, " +
			"verified and clear titles, 500+ happy clients, 50+ successful " +
			"projects, transparent deals.",
	},
}

type listingUsecase struct {
	cfg *config.Config
}

// NewListingUsecase serves the site's static catalog and display info.
func NewListingUsecase(cfg *config.Config) domain.ListingUsecase {
	return &listingUsecase{cfg: cfg}
}

func (uc *listingUsecase) Listings() []domain.Listing {
	out := make([]domain.Listing, len(catalog))
	copy(out, catalog)
	return out
}

func (uc *listingUsecase) Featured() []domain.Listing {
	var out []domain.Listing
	for _, l := range catalog {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}

func (uc *listingUsecase) Content(section domain.Section) (domain.SectionContent, error) {
	content, ok := sectionCopy[section]
	if !ok {
		return domain.SectionContent{}, fmt.Errorf("no static content for section %q", section)
	}
	return content, nil
}

func (uc *listingUsecase) SiteInfo() domain.SiteInfo {
	return domain.SiteInfo{
		OfficeAddress: uc.cfg.OfficeAddress,
		ContactPhone:  uc.cfg.ContactPhone,
		ContactEmail:  uc.cfg.ContactEmail,
		WebsiteURL:    uc.cfg.WebsiteURL,
		OfficeHours:   "Monday - Saturday: 9:00 AM - 6:00 PM, Sunday: Closed",
	}
}
