package way

// Result is a routed search outcome. Exactly one of Answer and Videos is
// populated; Source names the branch that produced it ("gemini",
// "google_videos" or "youtube").
type Result struct {
	Source string
	Answer string
	Videos []Video
}

// Video is a single normalized video result.
type Video struct {
	Title       string
	Link        string
	Description string
	Channel     string
	Views       string
}

// Health is the server health report.
type Health struct {
	Status string
	Checks map[string]string
}
