package domain

// MaxResults caps every normalized video list. Provider order is preserved;
// shorter lists are returned unpadded.
const MaxResults = 5

// VideoRecord is the normalized shape shared by all video providers.
// Description, Channel and Views are empty when the provider omits them.
// Views keeps the provider-native formatting and is never parsed to a number.
type VideoRecord struct {
	Title       string
	Link        string
	Description string
	Channel     string
	Views       string
}
