package domain

// Set is read-only reference data, seeded externally.
type Set struct {
	Key      string `json:"key" gorm:"primaryKey"`
	Name     string `json:"name"`
	Year     int    `json:"year" gorm:"index:idx_sets_year_theme,priority:1"`
	Theme    int    `json:"theme" gorm:"index:idx_sets_year_theme,priority:2;index"`
	NumParts int    `json:"num_parts"`
	ImageURL string `json:"image_url,omitempty"`
}

// Theme keys at or below zero are a "no theme" sentinel.
type Theme struct {
	Key  int    `json:"key" gorm:"primaryKey"`
	Name string `json:"name"`
}
