package chi

// errorCode identifies a machine-readable error category in responses.
type errorCode string

const (
	codeBadRequest            errorCode = "bad_request"
	codeEmptyQuery            errorCode = "empty_query"
	codeProviderNotConfigured errorCode = "provider_not_configured"
	codeUpstreamError         errorCode = "upstream_error"
	codeRoutingExhausted      errorCode = "routing_exhausted"
	codeInternalError         errorCode = "internal_error"
)

type searchRequest struct {
	Query string `json:"query"`
}

// searchResponse carries either a direct answer or a video list, never both.
type searchResponse struct {
	Source  string           `json:"source"`
	Answer  *string          `json:"answer,omitempty"`
	Results *[]videoResponse `json:"results,omitempty"`
}

type videoResponse struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	Channel     string `json:"channel,omitempty"`
	Views       string `json:"views,omitempty"`
}

type errorResponse struct {
	Code       errorCode `json:"code"`
	Message    string    `json:"message"`
	Dependency string    `json:"dependency,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type rootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
