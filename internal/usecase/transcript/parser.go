package transcript

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

var (
	// ErrUnrecognizedStructure is returned for JSON that is not an array of dialogue objects
	ErrUnrecognizedStructure = errors.New("unrecognized transcript structure")
	// ErrNoDialogue is returned when no turn could be recovered
	ErrNoDialogue = errors.New("no dialogue turns found")
)

// Result is the outcome of normalizing raw transcript content
type Result struct {
	// Text is the canonical rendering, or the original content when Parsed is false
	Text   string
	Turns  []entities.DialogueTurn
	Format entities.TranscriptFormat
	Parsed bool
	Err    error
}

// Parser turns raw transcript content into dialogue turns
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new Parser instance
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseTurns parses content into dialogue turns without logging
func ParseTurns(content string, hint entities.TranscriptFormat) ([]entities.DialogueTurn, error) {
	turns, _, err := NewParser(nil).Parse(content, hint)
	return turns, err
}

// Parse dispatches on hint, detecting the format when the hint is unknown.
// It returns the format that was actually used.
func (p *Parser) Parse(content string, hint entities.TranscriptFormat) ([]entities.DialogueTurn, entities.TranscriptFormat, error) {
	format := hint
	if format == entities.TranscriptFormatUnknown {
		format = DetectFormat(content)
	}

	var (
		turns []entities.DialogueTurn
		err   error
	)
	switch format {
	case entities.TranscriptFormatCSV:
		turns = parseCSV(content)
	case entities.TranscriptFormatJSON:
		turns, err = parseJSON(content)
	case entities.TranscriptFormatTXT:
		turns = parseTXT(content)
	default:
		return nil, format, fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, format, err
	}
	if len(turns) == 0 {
		return nil, format, ErrNoDialogue
	}

	return turns, format, nil
}

// Normalize never fails: when parsing errors, panics or yields nothing the
// original content is returned unchanged with Parsed set to false.
func (p *Parser) Normalize(content string, hint entities.TranscriptFormat) (res Result) {
	res = Result{Text: content, Format: hint}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Text: content, Format: res.Format, Err: fmt.Errorf("transcript parser panic: %v", r)}
			if p.logger != nil {
				p.logger.Warn("⚠️ transcript parser panicked, using raw text", zap.Any("panic", r))
			}
		}
	}()

	turns, format, err := p.Parse(content, hint)
	res.Format = format
	if err != nil {
		res.Err = err
		if p.logger != nil {
			p.logger.Debug("transcript not parsed, using raw text",
				zap.String("format", format.String()),
				zap.Error(err),
			)
		}
		return res
	}

	res.Turns = turns
	res.Text = Render(turns)
	res.Parsed = true

	if p.logger != nil {
		p.logger.Debug("transcript parsed",
			zap.String("format", format.String()),
			zap.Int("turns", len(turns)),
		)
	}
	return res
}
