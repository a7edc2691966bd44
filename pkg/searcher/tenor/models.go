package tenor

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Next    string         `json:"next"`
}

type SearchResult struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	ContentDescription string `json:"content_description"`

	MediaFormats map[string]MediaObject `json:"media_formats"`
}

type MediaObject struct {
	URL  string `json:"url"`
	Dims []int  `json:"dims"`
	Size int    `json:"size"`
}
