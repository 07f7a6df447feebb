package transcript

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// Key aliases in priority order; the first present key wins.
var (
	timestampKeys = []string{"timestamp", "time"}
	speakerKeys   = []string{"speaker", "person", "name"}
	textKeys      = []string{"text", "message", "content"}
)

// parseJSON decodes an array of dialogue objects using the alias table.
func parseJSON(content string) ([]entities.DialogueTurn, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedStructure, err)
	}
	if len(items) == 0 {
		return nil, ErrUnrecognizedStructure
	}

	var first map[string]any
	if err := json.Unmarshal(items[0], &first); err != nil || !hasDialogueKey(first) {
		return nil, ErrUnrecognizedStructure
	}

	turns := make([]entities.DialogueTurn, 0, len(items))
	for _, raw := range items {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}

		speaker := lookup(obj, speakerKeys)
		if speaker == "" {
			speaker = UnknownSpeaker
		}

		turns = append(turns, entities.DialogueTurn{
			Timestamp: lookup(obj, timestampKeys),
			Speaker:   speaker,
			Text:      lookup(obj, textKeys),
		})
	}

	return turns, nil
}

func hasDialogueKey(obj map[string]any) bool {
	for _, keys := range [][]string{speakerKeys, textKeys} {
		for _, k := range keys {
			if _, ok := obj[k]; ok {
				return true
			}
		}
	}
	return false
}

func lookup(obj map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || v == nil {
			continue
		}
		return strings.TrimSpace(stringify(v))
	}
	return ""
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// stripCodeFence removes a surrounding markdown code block, which chat
// exports often wrap JSON in.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	if i := strings.Index(content, "\n"); i >= 0 {
		content = content[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(content), "```"))
}
