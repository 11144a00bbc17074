package domain

// Source identifies which upstream produced a search result.
type Source string

const (
	// SourceGemini tags a direct answer from the classifier model.
	SourceGemini Source = "gemini"
	// SourceGoogleVideos tags results from the general video-search engine.
	SourceGoogleVideos Source = "google_videos"
	// SourceYouTube tags results from the platform branch, including its fallback.
	SourceYouTube Source = "youtube"
)

// SearchResult is the routing outcome: either a direct answer or a video
// list, never both.
type SearchResult struct {
	Source Source
	Answer string
	Videos []VideoRecord
}

// NewAnswer builds a direct-answer result.
func NewAnswer(text string) SearchResult {
	return SearchResult{Source: SourceGemini, Answer: text}
}

// NewVideoList builds a video-list result, truncating to MaxResults.
// An empty list is a valid result; nil is normalized to an empty slice so
// the serialized results field stays present.
func NewVideoList(source Source, records []VideoRecord) SearchResult {
	if records == nil {
		records = []VideoRecord{}
	}
	if len(records) > MaxResults {
		records = records[:MaxResults]
	}
	return SearchResult{Source: source, Videos: records}
}

// IsAnswer reports whether the result is a direct answer.
func (r SearchResult) IsAnswer() bool { return r.Source == SourceGemini }
