package models

// SupportRequest is a single check-in submitted by the user
type SupportRequest struct {
	Text      string   `json:"text"`
	Mood      Mood     `json:"mood"`
	Emotions  []string `json:"emotions"`  // keywords, e.g. "anxious"
	Journal   string   `json:"journal"`
	Tradition string   `json:"tradition"` // optional, see Traditions
}

// Activity is a locally defined coping suggestion.
type Activity struct {
	Suggestion string `json:"suggestion"`
	Rationale  string `json:"rationale"`
}

// VideoLink is a search link, no video API is called.
type VideoLink struct {
	Title string `json:"title"`
	Query string `json:"query"`
	URL   string `json:"url"`
}

// SupportResult is the content bundle returned for a check-in.
type SupportResult struct {
	ID          string      `json:"id"`
	StressLevel StressLevel `json:"stress_level"`
	Quotes      []string    `json:"quotes"`
	Activities  []Activity  `json:"activities"`
	Videos      []VideoLink `json:"videos"`
	Story       string      `json:"story"`
	Affirmation string      `json:"affirmation"`
	Logged      bool        `json:"logged"`
	LogError    string      `json:"log_error,omitempty"`
}
