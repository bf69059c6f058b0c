package types

// OpenGraphTags holds the og:* meta tags of a page.
type OpenGraphTags struct {
	Title       string `json:"og_title,omitempty"`
	Description string `json:"og_description,omitempty"`
	Image       string `json:"og_image,omitempty"`
	URL         string `json:"og_url,omitempty"`
	Type        string `json:"og_type,omitempty"`
	SiteName    string `json:"og_site_name,omitempty"`
}

// TwitterCard holds the twitter:* meta tags of a page.
type TwitterCard struct {
	Card        string `json:"card,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Site        string `json:"site,omitempty"`
}

// SchemaMarkup summarizes the JSON-LD structured data found on a page.
type SchemaMarkup struct {
	Types []string         `json:"types"`
	Data  []map[string]any `json:"data,omitempty"`
}

// SEOData is the full SEO metadata snapshot of a page.
type SEOData struct {
	URL              string        `json:"url"`
	Title            string        `json:"title,omitempty"`
	MetaDescription  string        `json:"meta_description,omitempty"`
	CanonicalURL     string        `json:"canonical_url,omitempty"`
	H1Tags           []string      `json:"h1_tags"`
	H2Tags           []string      `json:"h2_tags"`
	OpenGraph        OpenGraphTags `json:"open_graph"`
	TwitterCard      TwitterCard   `json:"twitter_card"`
	SchemaMarkup     SchemaMarkup  `json:"schema_markup"`
	Robots           string        `json:"robots,omitempty"`
	Viewport         string        `json:"viewport,omitempty"`
	Charset          string        `json:"charset,omitempty"`
	Language         string        `json:"language,omitempty"`
	WordCount        int           `json:"word_count"`
	InternalLinks    int           `json:"internal_links"`
	ExternalLinks    int           `json:"external_links"`
	ImagesWithoutAlt int           `json:"images_without_alt"`
	TotalImages      int           `json:"total_images"`
	ExtractionTimeMs int64         `json:"extraction_time_ms"`
}
