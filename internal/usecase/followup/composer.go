package followup

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// AllRecipients addresses the whole team
const AllRecipients = "all"

// DefaultSender is the signature placeholder
const DefaultSender = "[Your Name]"

// ErrUnknownRecipient is returned for a person who is neither a participant
// nor an action item owner
var ErrUnknownRecipient = errors.New("unknown recipient")

// Draft is a follow-up email ready to be copied into a mail client
type Draft struct {
	Recipient string `json:"recipient" yaml:"recipient"`
	Subject   string `json:"subject" yaml:"subject"`
	Body      string `json:"body" yaml:"body"`
}

const teamTemplate = `Hi Team,

Here's a summary of our "{{.Record.Title}}" meeting on {{.Record.Date}}:

---

### 📋 Summary
{{summaryBullets .Record.Summary}}

---

### ✅ Key Decisions
{{bullets .Record.KeyDecisions}}

---

### 🛠️ Action Items
{{teamItems .Items}}

---

### 📅 Next Steps
Let's schedule a follow-up meeting next week to track our progress.

Please let me know if you have any questions or need clarification on any of the items above.

Best regards,
{{.Sender}}`

const personTemplate = `Hi {{.Recipient}},

I wanted to follow up on our "{{.Record.Title}}" meeting on {{.Record.Date}}.

---

### 📋 Meeting Summary
{{.Record.Summary}}

---

### ✅ Key Decisions
{{bullets .Record.KeyDecisions}}

---

### 🛠️ Your Action Items
{{personItems .Items}}

---

Please let me know if you have any questions or need clarification on any of the items above.

Best regards,
{{.Sender}}`

var funcs = template.FuncMap{
	"bullets":        bullets,
	"summaryBullets": summaryBullets,
	"teamItems":      teamItems,
	"personItems":    personItems,
}

var (
	teamTmpl   = template.Must(template.New("team").Funcs(funcs).Parse(teamTemplate))
	personTmpl = template.Must(template.New("person").Funcs(funcs).Parse(personTemplate))
)

type draftData struct {
	Recipient string
	Record    entities.MeetingRecord
	Items     []entities.ActionItem
	Sender    string
}

// Composer renders follow-up drafts from a meeting record
type Composer struct {
	sender string
}

// NewComposer creates a composer signing drafts with sender
func NewComposer(sender string) *Composer {
	if strings.TrimSpace(sender) == "" {
		sender = DefaultSender
	}
	return &Composer{sender: sender}
}

// Compose builds the team draft when person is empty or "all", otherwise a
// draft listing only that person's action items.
func (c *Composer) Compose(record entities.MeetingRecord, person string) (Draft, error) {
	person = strings.TrimSpace(person)
	subject := "Follow-up: " + record.Title

	if person == "" || strings.EqualFold(person, AllRecipients) {
		body, err := render(teamTmpl, draftData{
			Recipient: AllRecipients,
			Record:    record,
			Items:     record.ActionItems,
			Sender:    c.sender,
		})
		if err != nil {
			return Draft{}, err
		}
		return Draft{Recipient: AllRecipients, Subject: subject, Body: body}, nil
	}

	if !isKnown(record, person) {
		return Draft{}, fmt.Errorf("%w: %s", ErrUnknownRecipient, person)
	}

	body, err := render(personTmpl, draftData{
		Recipient: person,
		Record:    record,
		Items:     record.ActionItemsFor(person),
		Sender:    c.sender,
	})
	if err != nil {
		return Draft{}, err
	}
	return Draft{Recipient: person, Subject: subject, Body: body}, nil
}

// Recipients lists the distinct action item owners in first-seen order
func Recipients(record entities.MeetingRecord) []string {
	seen := make(map[string]struct{})
	people := make([]string, 0)
	for _, item := range record.ActionItems {
		if _, ok := seen[item.Person]; ok {
			continue
		}
		seen[item.Person] = struct{}{}
		people = append(people, item.Person)
	}
	return people
}

func isKnown(record entities.MeetingRecord, person string) bool {
	for _, item := range record.ActionItems {
		if item.Person == person {
			return true
		}
	}
	for _, p := range record.Participants {
		if strings.EqualFold(p.Name, person) {
			return true
		}
	}
	return false
}

func render(tmpl *template.Template, data draftData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s draft: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func bullets(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "- " + l
	}
	return strings.Join(out, "\n")
}

// summaryBullets turns each ". " separated sentence into a bullet
func summaryBullets(summary string) string {
	parts := strings.Split(summary, ". ")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return bullets(parts)
}

func dueSuffix(item entities.ActionItem) string {
	if item.DueDate == "" {
		return ""
	}
	return " (Due: " + item.DueDate + ")"
}

func teamItems(items []entities.ActionItem) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprintf("- **%s**: %s%s", item.Person, item.Task, dueSuffix(item))
	}
	return strings.Join(out, "\n")
}

func personItems(items []entities.ActionItem) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item.Task + dueSuffix(item)
	}
	return strings.Join(out, "\n")
}
