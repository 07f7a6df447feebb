package extraction

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// DefaultVerbStoplist holds reporting and agreement verbs that follow
// "<name> is/as" in prose but are never roles.
var DefaultVerbStoplist = []string{
	"said", "mentioned", "noted", "added", "suggested", "proposed",
	"asked", "questioned", "answered", "replied", "responded", "stated",
	"explained", "clarified", "confirmed", "agreed", "disagreed",
	"approved", "rejected",
	"going", "not", "also",
}

// DefaultLabelStoplist holds metadata labels that look like speakers in
// "Label: value" lines.
var DefaultLabelStoplist = []string{
	"meeting title", "title", "meeting date", "date", "time", "location",
	"agenda", "participants", "attendees", "present", "in attendance",
	"meeting members", "note", "notes", "summary", "action item",
	"action items", "task", "to-do", "decision", "decisions",
	"key decision", "final decision", "conclusion", "next steps",
}

var participantLabels = []string{
	"participants", "attendees", "present", "in attendance", "meeting members",
}

var participantLabelPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(participantLabels))
	for _, label := range participantLabels {
		label = strings.ReplaceAll(label, " ", `[ \t]+`)
		patterns = append(patterns, regexp.MustCompile(`(?i)^[ \t]*`+linePrefix+label+`[ \t]*:[ \t]*(.*)$`))
	}
	return patterns
}()

var (
	// a line that opens a new label or dialogue turn ends the block
	blockTerminatorPattern = regexp.MustCompile(`^[ \t]*(?:\[[^\]\n]*\]|[A-Za-z][\w .'-]*:\s)`)
	bulletPattern          = regexp.MustCompile(`^(?:[-*•]+|\d+[.)])\s+`)

	participantRolePatterns = []*regexp.Regexp{
		// Name (Role)
		regexp.MustCompile(`^([^(]+?)\s*\(([^)]*)\)`),
		// Name - Role
		regexp.MustCompile(`^(.+?)\s+[-–—]\s+(.+)$`),
		// Name, Role
		regexp.MustCompile(`^([^,]+),\s*([^,]+)$`),
		// Name: Role
		regexp.MustCompile(`^([^:]+):\s*(.+)$`),
	}

	speakerPattern = regexp.MustCompile(`(?m)^[ \t]*` + linePrefix + `([A-Za-z][A-Za-z .]*?)[ \t]*:\s`)
)

// ParticipantExtractor finds meeting participants and their roles.
// Stoplists are plain data so callers can tune them.
type ParticipantExtractor struct {
	VerbStoplist  []string
	LabelStoplist []string
}

// NewParticipantExtractor returns an extractor using the default stoplists
func NewParticipantExtractor() *ParticipantExtractor {
	return &ParticipantExtractor{
		VerbStoplist:  DefaultVerbStoplist,
		LabelStoplist: DefaultLabelStoplist,
	}
}

// WithExtraVerbs returns a copy of e whose verb stoplist also holds verbs
func (e *ParticipantExtractor) WithExtraVerbs(verbs ...string) *ParticipantExtractor {
	out := &ParticipantExtractor{
		VerbStoplist:  append([]string(nil), e.VerbStoplist...),
		LabelStoplist: e.LabelStoplist,
	}
	for _, v := range verbs {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out.VerbStoplist = append(out.VerbStoplist, v)
		}
	}
	return out
}

// ExtractParticipants runs the default extractor over text
func ExtractParticipants(text string) []entities.Participant {
	return NewParticipantExtractor().Extract(text)
}

// Extract prefers an explicit participant block, falls back to dialogue
// speakers, and finally tries to fill missing roles from prose such as
// "Dana is the project lead".
func (e *ParticipantExtractor) Extract(text string) []entities.Participant {
	set := newParticipantSet()

	if block, ok := findParticipantBlock(text); ok {
		for _, segment := range splitParticipantBlock(block) {
			set.add(parseParticipantSegment(segment))
		}
	}

	if set.len() == 0 {
		labels := toSet(e.LabelStoplist)
		for _, m := range speakerPattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1])
			if !e.isSpeakerName(name, labels) {
				continue
			}
			set.add(entities.Participant{Name: name})
		}
	}

	participants := set.list()
	e.inferRoles(text, participants)
	return participants
}

func (e *ParticipantExtractor) isSpeakerName(name string, labels map[string]struct{}) bool {
	if runeLen(name) <= 1 {
		return false
	}
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "http") || strings.HasPrefix(lower, "www") {
		return false
	}
	_, isLabel := labels[lower]
	return !isLabel
}

func (e *ParticipantExtractor) inferRoles(text string, participants []entities.Participant) {
	verbs := toSet(e.VerbStoplist)
	for i := range participants {
		if participants[i].Role != "" {
			continue
		}
		p := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(participants[i].Name) +
			`[ \t]+(?:is|as)[ \t]+(?:(?:the|a|an)[ \t]+)?([A-Za-z][A-Za-z ]*)`)
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		role := strings.TrimSpace(m[1])
		if role == "" || runeLen(role) >= 30 {
			continue
		}
		lower := strings.ToLower(role)
		if _, ok := verbs[lower]; ok {
			continue
		}
		if _, ok := verbs[strings.Fields(lower)[0]]; ok {
			continue
		}
		participants[i].Role = role
	}
}

// findParticipantBlock locates the first labeled participant block, trying
// labels in priority order. The block runs until a blank line or a line
// that opens a new label or dialogue turn.
func findParticipantBlock(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for _, p := range participantLabelPatterns {
		for i, line := range lines {
			m := p.FindStringSubmatch(strings.TrimRight(line, "\r"))
			if m == nil {
				continue
			}

			var parts []string
			j := i + 1
			if first := strings.TrimSpace(m[1]); first != "" {
				parts = append(parts, first)
			} else {
				for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
					j++
				}
				if j < len(lines) {
					parts = append(parts, strings.TrimSpace(lines[j]))
					j++
				}
			}
			for ; j < len(lines); j++ {
				next := strings.TrimRight(lines[j], "\r")
				if strings.TrimSpace(next) == "" || blockTerminatorPattern.MatchString(next) {
					break
				}
				parts = append(parts, strings.TrimSpace(next))
			}

			if len(parts) == 0 {
				continue
			}
			return strings.Join(parts, "\n"), true
		}
	}
	return "", false
}

// splitParticipantBlock tries newline, comma and semicolon in turn and keeps
// the first separator that yields more than one entry. Separators inside
// parentheses are ignored.
func splitParticipantBlock(block string) []string {
	for _, sep := range []rune{'\n', ',', ';'} {
		if parts := splitOutsideParens(block, sep); len(parts) > 1 {
			return parts
		}
	}
	if block = strings.TrimSpace(block); block != "" {
		return []string{block}
	}
	return nil
}

func splitOutsideParens(s string, sep rune) []string {
	var (
		parts   []string
		current strings.Builder
		depth   int
	)
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == sep && depth == 0:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()
	return parts
}

func parseParticipantSegment(segment string) entities.Participant {
	segment = strings.TrimSpace(bulletPattern.ReplaceAllString(strings.TrimSpace(segment), ""))

	for _, p := range participantRolePatterns {
		m := p.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		name := cleanName(m[1])
		if name == "" {
			continue
		}
		return entities.Participant{Name: name, Role: strings.TrimSpace(m[2])}
	}
	return entities.Participant{Name: cleanName(segment)}
}

func cleanName(s string) string {
	return strings.Trim(strings.TrimSpace(s), " .")
}

// participantSet keeps insertion order and drops case-insensitive duplicates
type participantSet struct {
	seen  map[string]struct{}
	items []entities.Participant
}

func newParticipantSet() *participantSet {
	return &participantSet{seen: make(map[string]struct{})}
}

func (s *participantSet) add(p entities.Participant) {
	key := p.Key()
	if key == "" {
		return
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, p)
}

func (s *participantSet) len() int { return len(s.items) }

func (s *participantSet) list() []entities.Participant {
	if s.items == nil {
		return []entities.Participant{}
	}
	return s.items
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

// Names returns the participant names in order
func Names(participants []entities.Participant) []string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}
	return names
}
