package extraction

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

const (
	// MaxActionItems caps the number of action items returned
	MaxActionItems = 10
	// actionItemFallbackThreshold triggers the keyword pass below this count
	actionItemFallbackThreshold = 5
)

var (
	taskLabelPattern = regexp.MustCompile(`(?i)\b(?:action item|task|to-do):?\s+([^.!?]+[.!?]+)`)
	modalPattern     = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z ]*?) (?:will|should|needs to|is going to|has to)\s+[^.!?]+[.!?]+`)
	assignedPattern  = regexp.MustCompile(`(?i)assigned to ([A-Za-z][A-Za-z ]*?):?\s+([^.!?]+[.!?]+)`)

	// speaker label at the start of a dialogue line
	lineSpeakerPattern = regexp.MustCompile(`^[ \t]*` + linePrefix + `([^:\n]+?)[ \t]*:\s`)
)

var actionKeywords = []string{
	"will", "should", "needs to", "going to", "responsible for",
	"take care of", "handle", "follow up",
}

var firstPersonSubjects = map[string]struct{}{
	"i": {}, "we": {},
}

// ExtractActionItems finds tasks and their owners. names are the known
// participant names used to attribute tasks.
func ExtractActionItems(text string, names []string) []entities.ActionItem {
	items := make([]entities.ActionItem, 0)
	full := func() bool { return len(items) >= MaxActionItems }

	add := func(person, task string) bool {
		task = strings.TrimSpace(task)
		if full() || runeLen(task) <= entities.MinActionItemTaskLength {
			return false
		}
		person = strings.TrimSpace(person)
		if person == "" {
			person = entities.UnassignedPerson
		}
		items = append(items, entities.ActionItem{
			Person:  person,
			Task:    task,
			DueDate: ExtractDueDate(task),
			Status:  entities.ActionItemStatusPending,
		})
		return true
	}

	for _, m := range taskLabelPattern.FindAllStringSubmatch(text, -1) {
		if full() {
			break
		}
		add(lastNameIn(m[1], names), m[1])
	}

	for _, idx := range modalPattern.FindAllStringSubmatchIndex(text, -1) {
		if full() {
			break
		}
		task := text[idx[0]:idx[1]]
		if runeLen(strings.TrimSpace(task)) <= entities.MinActionItemTaskLength {
			continue
		}
		subject := strings.TrimSpace(text[idx[2]:idx[3]])
		add(resolveSubject(subject, names, speakerAt(text, idx[0])), task)
	}

	for _, m := range assignedPattern.FindAllStringSubmatch(text, -1) {
		if full() {
			break
		}
		add(m[1], m[2])
	}

	if len(items) < actionItemFallbackThreshold {
		// Containment is checked in both directions, so a short distinct
		// task that is a substring of a longer one is suppressed too.
		tasks := make([]string, len(items))
		for i, item := range items {
			tasks[i] = strings.ToLower(item.Task)
		}
		for _, sentence := range SplitSentences(text) {
			if full() {
				break
			}
			lower := strings.ToLower(sentence)
			if !hasKeyword(lower, actionKeywords) || overlapsAny(lower, tasks) {
				continue
			}
			if add(lastNameIn(sentence, names), sentence) {
				tasks = append(tasks, lower)
			}
		}
	}

	return items
}

// lastNameIn returns the last name from names (in list order) that appears in text
func lastNameIn(text string, names []string) string {
	person := ""
	for _, name := range names {
		if name != "" && strings.Contains(text, name) {
			person = name
		}
	}
	return person
}

// resolveSubject narrows a captured subject to a known participant name and
// attributes subjects ending in "I" or "we" to the line's speaker.
func resolveSubject(subject string, names []string, speaker string) string {
	if name := lastNameIn(subject, names); name != "" {
		return name
	}
	words := strings.Fields(strings.ToLower(subject))
	if len(words) == 0 {
		return subject
	}
	if _, ok := firstPersonSubjects[words[len(words)-1]]; ok && speaker != "" {
		return speaker
	}
	return subject
}

// speakerAt returns the speaker label of the line containing offset
func speakerAt(text string, offset int) string {
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[start:], '\n')
	line := text[start:]
	if end >= 0 {
		line = text[start : start+end]
	}
	if m := lineSpeakerPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
