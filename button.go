package richpresence

// Button represents a clickable link shown with an activity. Both fields
// are required and always rendered.
type Button struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NewButton creates a new Button with the given label and URL.
//
// The remote peer expects labels of 1-32 characters and URLs of 1-512
// characters. Neither bound is checked here; a payload that violates
// them is rejected by the peer when submitted.
func NewButton(label, url string) Button {
	return Button{
		Label: label,
		URL:   url,
	}
}
