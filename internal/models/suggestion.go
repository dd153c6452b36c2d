package models

// CelebrationIdea is an AI-suggested way to celebrate or prepare for an
// event. Ideas are display-only and discarded when the detail view is
// left; they are never persisted.
type CelebrationIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GlobalHoliday is an AI-sourced public holiday candidate for a given
// country. The date stays a raw YYYY-MM-DD string until the suggestion
// is imported as an Event. Suggestions are never persisted.
type GlobalHoliday struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// ImportKey identifies a suggestion within the session-scoped
// "already added" membership set.
func (g GlobalHoliday) ImportKey() string {
	return g.Name + g.Date
}
