package models

// CategoryKey identifies one of the fixed document categories.
type CategoryKey string

const (
	CategoryActs           CategoryKey = "acts"
	CategorySupremeCourt   CategoryKey = "supreme_court"
	CategoryHighCourts     CategoryKey = "high_courts"
	CategoryDistrictCourts CategoryKey = "district_courts"
	CategoryTribunals      CategoryKey = "tribunals"
	CategoryConstitution   CategoryKey = "constitution"
	CategoryBills          CategoryKey = "bills"
	CategoryRegulations    CategoryKey = "regulations"
)

// CategoryStat is one aggregate row per document category.
type CategoryStat struct {
	Key       CategoryKey `gorm:"type:varchar(32);primarykey" json:"key"`
	Label     string      `gorm:"type:varchar(64);not null"   json:"label"`
	Position  int         `gorm:"not null"                    json:"position"`
	Count     int64       `gorm:"not null"                    json:"count"`
	WordCount int64       `gorm:"not null"                    json:"word_count"`
}

// ActCategoryCount is one row of the acts-by-category list (central acts,
// state acts, British-era collections).
type ActCategoryCount struct {
	Category string `gorm:"type:varchar(128);primarykey" json:"category"`
	Position int    `gorm:"not null"                     json:"position"`
	Count    int64  `gorm:"not null"                     json:"count"`
}

// WordCountBucket is one row of the fixed word-count-range histogram.
type WordCountBucket struct {
	Range    string `gorm:"type:varchar(32);primarykey" json:"range"`
	Position int    `gorm:"not null"                    json:"position"`
	NumFiles int64  `gorm:"not null"                    json:"num_files"`
}

// Totals holds the corpus-wide sums.
type Totals struct {
	Documents int64 `json:"documents"`
	Words     int64 `json:"words"`
}

// Insight names the category with the highest average word count per
// document. Categories without documents are never eligible.
type Insight struct {
	Category CategoryKey `json:"category"`
	Label    string      `json:"label"`
	Average  float64     `json:"average"`
}

// SummaryResponse feeds the dashboard hero counters and summary cards.
type SummaryResponse struct {
	Totals           Totals   `json:"totals"`
	DocumentsCompact string   `json:"documents_compact"`
	WordsCompact     string   `json:"words_compact"`
	DocumentsGrouped string   `json:"documents_grouped"`
	WordsGrouped     string   `json:"words_grouped"`
	Insight          *Insight `json:"insight,omitempty"`
}

// CategoryStatsResponse lists the per-category rows in display order.
type CategoryStatsResponse struct {
	Categories []CategoryStat `json:"categories"`
}

// ActCategoriesQueryParams bounds the top-N acts listing.
type ActCategoriesQueryParams struct {
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// ActCategoriesResponse is the top-N-with-overflow acts listing.
type ActCategoriesResponse struct {
	Categories []ActCategoryCount `json:"categories"`
}

// CatalogSearchQueryParams carries the catalog search query.
type CatalogSearchQueryParams struct {
	Query string `json:"q" validate:"required,min=1,max=128"`
}

// CatalogSearchHit is a single catalog search result.
type CatalogSearchHit struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Score    float64 `json:"score"`
}

// CatalogSearchResponse lists catalog search results by descending score.
type CatalogSearchResponse struct {
	Hits []CatalogSearchHit `json:"hits"`
}
