package entities

import "time"

const (
	// DefaultTitle is used when no title can be derived
	DefaultTitle = "Untitled Meeting"
	// DefaultSummary is used when no sentence could be scored
	DefaultSummary = "No summary available."
	// ErrorSummary replaces the summary when extraction failed part way
	ErrorSummary = "There was an error processing the transcript. Using basic information only."
	// UnreadableSummary is used when the input does not look like text at all
	UnreadableSummary = "The transcript does not contain readable text."
	// DateLayout formats fallback dates (MM/DD/YYYY)
	DateLayout = "01/02/2006"
)

// MeetingRecord is the structured result of processing one transcript
type MeetingRecord struct {
	Title        string        `json:"title" yaml:"title"`
	Date         string        `json:"date" yaml:"date"`
	Participants []Participant `json:"participants" yaml:"participants"`
	Summary      string        `json:"summary" yaml:"summary"`
	KeyDecisions []string      `json:"keyDecisions" yaml:"keyDecisions"`
	ActionItems  []ActionItem  `json:"actionItems" yaml:"actionItems"`
}

// NewMeetingRecord returns a record filled with safe defaults
func NewMeetingRecord(now time.Time) MeetingRecord {
	return MeetingRecord{
		Title:        DefaultTitle,
		Date:         now.Format(DateLayout),
		Participants: []Participant{},
		Summary:      DefaultSummary,
		KeyDecisions: []string{},
		ActionItems:  []ActionItem{},
	}
}

// Normalize replaces nil collections and empty scalars with defaults so the
// record always serializes with every field present.
func (r *MeetingRecord) Normalize(now time.Time) {
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	if r.Date == "" {
		r.Date = now.Format(DateLayout)
	}
	if r.Summary == "" {
		r.Summary = DefaultSummary
	}
	if r.Participants == nil {
		r.Participants = []Participant{}
	}
	if r.KeyDecisions == nil {
		r.KeyDecisions = []string{}
	}
	if r.ActionItems == nil {
		r.ActionItems = []ActionItem{}
	}
}

// ActionItemsFor returns the action items assigned to person
func (r MeetingRecord) ActionItemsFor(person string) []ActionItem {
	items := make([]ActionItem, 0)
	for _, item := range r.ActionItems {
		if item.Person == person {
			items = append(items, item)
		}
	}
	return items
}
