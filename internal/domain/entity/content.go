package entity

// Static reference content: crop encyclopedia entries, farming tips, the
// disease catalog and the home carousel. Read-only data, not derived state.

// CropInfo is an encyclopedia entry for a single crop.
type CropInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	FarmingInfo string `json:"farming_info"`
}

// FarmingTip is a short agronomy advisory shown on the tips screen.
type FarmingTip struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DiseaseInfo is a catalog entry describing a common crop disease.
type DiseaseInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Treatment   string `json:"treatment"`
}

// CarouselSlide is a home-screen slide linking to a crop entry.
type CarouselSlide struct {
	CropID   string `json:"crop_id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
