package domain

// GenerateRequest carries the fields of one hashtag-generation form
// submission. It is transient — never persisted.
//
// EventType is the only required field. Which of the name fields matters
// depends on the category's template family; the rule engine tolerates
// absent fields by producing a smaller tag list rather than failing.
type GenerateRequest struct {
	EventType string `json:"eventType" validate:"required"`
	BrideName string `json:"brideName,omitempty"`
	GroomName string `json:"groomName,omitempty"`
	ChildName string `json:"childName,omitempty"`
	EventName string `json:"eventName,omitempty"`

	// Date is an optional ISO calendar date (YYYY-MM-DD, the HTML date
	// input format). A present but unparseable date fails the request.
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
