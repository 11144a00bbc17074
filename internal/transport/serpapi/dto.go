package serpapi

import "encoding/json"

// searchResponse is the subset of a SerpAPI response the router needs.
type searchResponse struct {
	VideoResults []videoItem `json:"video_results"`
	Error        string      `json:"error"`
}

// videoItem covers both engine layouts: google_videos and youtube items
// carry the channel either as a nested object or a flat channel_name field.
type videoItem struct {
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Description string      `json:"description"`
	Channel     channelInfo `json:"channel"`
	ChannelName string      `json:"channel_name"`
	Views       flexString  `json:"views"`
}

// channelInfo tolerates both the object form {"name": "..."} and a bare
// string, which some engines emit.
type channelInfo struct {
	Name string `json:"name"`
}

func (c *channelInfo) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Name = obj.Name
	return nil
}

// flexString decodes a JSON string or number, keeping the provider-native
// textual form. View counts arrive as either ("1.2M views" vs 1200000).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
