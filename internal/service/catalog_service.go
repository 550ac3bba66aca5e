package service

import "github.com/frontier/backend/internal/model"

// CatalogService serves the fixed list of offered services.
type CatalogService interface {
	List() []model.Service
}

type catalogService struct{}

// NewCatalogService creates a CatalogService.
func NewCatalogService() CatalogService {
	return catalogService{}
}

// List builds the catalog from scratch on every call so callers may modify
// the result freely.
func (catalogService) List() []model.Service {
	return []model.Service{
		{
			ID:          "website-development",
			Name:        "Website Development",
			Price:       "$200",
			Description: "Professional, responsive websites tailored to your business needs.",
			Image:       "https://files.catbox.moe/6dj5x3.jpg",
			Features:    []string{"Responsive Design", "SEO Optimized", "Fast Loading", "Mobile First"},
		},
		{
			ID:          "logo-design",
			Name:        "Logo Designing",
			Price:       "$10",
			Description: "Professional logo design services that capture your brand's essence.",
			Image:       "https://files.catbox.moe/4ezw8t.jpg",
			Features:    []string{"Unique Design", "Multiple Formats", "Commercial Rights", "Revisions Included"},
		},
		{
			ID:          "streaming-accounts",
			Name:        "Streaming Accounts",
			Price:       "Contact for pricing",
			Description: "Affordable Netflix and Crunchyroll accounts.",
			Image:       "https://files.catbox.moe/c1ekuj.jpg",
			Features:    []string{"Netflix Access", "Crunchyroll Access", "Reliable Service", "Competitive Pricing"},
		},
		{
			ID:          "code-dealer",
			Name:        "Code Dealer",
			Price:       "Custom pricing",
			Description: "Custom code solutions designed for resale and commercial use.",
			Image:       "https://files.catbox.moe/7uhq6h.jpg",
			Features:    []string{"Clean Code", "Well Documented", "Commercial Rights", "Multiple Languages"},
		},
		{
			ID:          "free-psp-games",
			Name:        "Free PSP Games",
			Price:       "FREE",
			Description: "Join our exclusive WhatsApp channel for free PSP games!",
			Image:       "https://files.catbox.moe/b05woz.jpg",
			Features:    []string{"Free Access", "Regular Updates", "Game Library", "Community Support"},
		},
	}
}
