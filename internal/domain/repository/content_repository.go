package repository

import (
	"mazraa/internal/domain/entity"
	"mazraa/internal/i18n"
)

// ContentProvider serves the read-only reference content: crop encyclopedia,
// farming tips, disease catalog and home carousel. Content is static and
// localized; it is not derived state, so there are no mutations.
type ContentProvider interface {
	// Crops returns every crop encyclopedia entry.
	Crops(loc i18n.Locale) []*entity.CropInfo

	// CropByID returns a single crop entry, or nil when the id is unknown.
	CropByID(loc i18n.Locale, id string) *entity.CropInfo

	// Tips returns the farming tips.
	Tips(loc i18n.Locale) []*entity.FarmingTip

	// Diseases returns the disease catalog.
	Diseases(loc i18n.Locale) []*entity.DiseaseInfo

	// Slides returns the home carousel slides.
	Slides(loc i18n.Locale) []*entity.CarouselSlide
}
