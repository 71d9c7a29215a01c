package dashboard

import "strconv"

// Card is one summary tile on the dashboard
type Card struct {
	Title       string `json:"title"`
	Count       int64  `json:"count"`
	Text        string `json:"text,omitempty"` // set when IsTextValue
	IconKey     string `json:"icon_key"`
	Description string `json:"description"`
	ColorToken  string `json:"color_token"`
	IsTextValue bool   `json:"is_text_value"`
}

// Value returns what the tile displays
func (c Card) Value() string {
	if c.IsTextValue {
		return c.Text
	}
	return strconv.FormatInt(c.Count, 10)
}

// Welcome is the banner at the top of the dashboard
type Welcome struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// PendingRow is one line of the pending actions panel
type PendingRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
	Href  string `json:"href,omitempty"`
}

// PendingPanel lists outstanding approvals for reviewers
type PendingPanel struct {
	Visible bool         `json:"visible"`
	Empty   bool         `json:"empty"`
	Rows    []PendingRow `json:"rows,omitempty"`
}

// View is the full dashboard view-model
type View struct {
	AccessLevel string       `json:"access_level"`
	Welcome     Welcome      `json:"welcome"`
	Cards       []Card       `json:"cards"`
	Pending     PendingPanel `json:"pending"`
	StatsLoaded bool         `json:"stats_loaded"`
}
