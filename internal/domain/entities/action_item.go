package entities

// ActionItemStatusPending is assigned to every accepted action item
const ActionItemStatusPending = "Pending"

// UnassignedPerson is used when no participant can be linked to a task
const UnassignedPerson = "Unassigned"

// MinActionItemTaskLength is the exclusive lower bound on task length (in runes)
const MinActionItemTaskLength = 10

// ActionItem is a task assigned during the meeting
type ActionItem struct {
	Person  string `json:"person" yaml:"person"`
	Task    string `json:"task" yaml:"task"`
	DueDate string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Status  string `json:"status,omitempty" yaml:"status,omitempty"`
}

// IsAssigned reports whether the item is linked to a person
func (a ActionItem) IsAssigned() bool {
	return a.Person != "" && a.Person != UnassignedPerson
}
