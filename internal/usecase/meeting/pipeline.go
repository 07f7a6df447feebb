package meeting

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-recap/internal/usecase/transcript"
)

// Stage is the furthest point a pipeline run reached
type Stage string

const (
	StageParsing               Stage = "parsing"
	StageRendering             Stage = "rendering"
	StageExtracting            Stage = "extracting"
	StageAssembled             Stage = "assembled"
	StageAssembledWithDefaults Stage = "assembled_with_defaults"
)

// Options tunes a Pipeline
type Options struct {
	// Concurrent runs the independent extractors in parallel
	Concurrent bool
	// Participants overrides the participant extractor (stoplists)
	Participants *extraction.ParticipantExtractor
	// Now overrides the clock used for fallback dates
	Now func() time.Time
}

// Outcome describes one pipeline run
type Outcome struct {
	Record   entities.MeetingRecord
	Stage    Stage
	Format   entities.TranscriptFormat
	Parsed   bool
	Turns    int
	Duration time.Duration
	// Err is the recovered failure when Stage is StageAssembledWithDefaults
	Err error
}

// Pipeline turns raw transcript text into a MeetingRecord. It holds no
// per-run state and is safe for concurrent use.
type Pipeline struct {
	parser       *transcript.Parser
	participants *extraction.ParticipantExtractor
	concurrent   bool
	now          func() time.Time
	logger       *zap.Logger

	// extractors, replaceable in tests
	dates     func(string, time.Time) []string
	decisions func(string) []string
	actions   func(string, []string) []entities.ActionItem
	summarize func(string) string
}

// NewPipeline creates a pipeline with the default extractors
func NewPipeline(logger *zap.Logger, opts Options) *Pipeline {
	participants := opts.Participants
	if participants == nil {
		participants = extraction.NewParticipantExtractor()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Pipeline{
		parser:       transcript.NewParser(logger),
		participants: participants,
		concurrent:   opts.Concurrent,
		now:          now,
		logger:       logger,
		dates:        extraction.ExtractDates,
		decisions:    extraction.ExtractDecisions,
		actions:      extraction.ExtractActionItems,
		summarize:    extraction.Summarize,
	}
}

// Extract is the total entry point: it always returns a well formed record.
func (p *Pipeline) Extract(raw string, hint entities.TranscriptFormat) entities.MeetingRecord {
	return p.Run(context.Background(), raw, hint).Record
}

// Run processes raw and reports how far it got. Failures inside the
// extractors are recovered; the record then keeps whatever was computed
// and carries the error notice as its summary.
func (p *Pipeline) Run(ctx context.Context, raw string, hint entities.TranscriptFormat) (out Outcome) {
	start := time.Now()
	now := p.now()
	out = Outcome{
		Record: entities.NewMeetingRecord(now),
		Stage:  StageParsing,
		Format: hint,
	}

	ctx, span := tracer().Start(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrHint, hint.String()),
		attribute.Int(AttrInputBytes, len(raw)),
	))

	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("pipeline panic at %s: %v", out.Stage, r)
			out.Stage = StageAssembledWithDefaults
			out.Record.Summary = entities.ErrorSummary
		}
		out.Record.Normalize(now)
		out.Duration = time.Since(start)
		endRunSpan(span, out)
		p.logOutcome(out)
	}()

	if !looksLikeText(raw) {
		out.Stage = StageAssembledWithDefaults
		out.Record.Summary = entities.UnreadableSummary
		return out
	}

	res := p.parser.Normalize(raw, hint)
	out.Format = res.Format
	out.Parsed = res.Parsed
	out.Turns = len(res.Turns)

	out.Stage = StageRendering
	text := cleanText(res.Text)

	out.Stage = StageExtracting
	record, err := p.extract(ctx, cleanText(raw), text, now)
	out.Record = record
	if err != nil {
		out.Err = err
		out.Stage = StageAssembledWithDefaults
		out.Record.Summary = entities.ErrorSummary
		return out
	}

	out.Stage = StageAssembled
	return out
}

func (p *Pipeline) extract(ctx context.Context, raw, text string, now time.Time) (entities.MeetingRecord, error) {
	var (
		record       = entities.NewMeetingRecord(now)
		dates        []string
		participants []entities.Participant
		actions      []entities.ActionItem
		decisions    []string
		summary      string
	)

	tasks := []struct {
		name string
		fn   func()
	}{
		{"dates", func() { dates = p.dates(text, now) }},
		{"participants", func() {
			participants = p.participants.Extract(text)
			actions = p.actions(text, extraction.Names(participants))
		}},
		{"decisions", func() { decisions = p.decisions(text) }},
		{"summary", func() { summary = p.summarize(text) }},
	}

	var err error
	if p.concurrent {
		g, gctx := errgroup.WithContext(ctx)
		for _, task := range tasks {
			g.Go(guard(gctx, task.name, task.fn))
		}
		err = g.Wait()
	} else {
		for _, task := range tasks {
			if taskErr := guard(ctx, task.name, task.fn)(); taskErr != nil && err == nil {
				err = taskErr
			}
		}
	}

	record.Title = extraction.ExtractTitle(raw)
	if len(dates) > 0 {
		record.Date = dates[0]
	}
	record.Participants = participants
	record.ActionItems = actions
	record.KeyDecisions = decisions
	record.Summary = summary

	return record, err
}

func (p *Pipeline) logOutcome(out Outcome) {
	if p.logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("stage", string(out.Stage)),
		zap.String("format", out.Format.String()),
		zap.Bool("parsed", out.Parsed),
		zap.Int("turns", out.Turns),
		zap.Int("participants", len(out.Record.Participants)),
		zap.Int("decisions", len(out.Record.KeyDecisions)),
		zap.Int("action_items", len(out.Record.ActionItems)),
		zap.Duration("duration", out.Duration),
	}
	if out.Err != nil {
		p.logger.Warn("⚠️ Transcript processed with defaults", append(fields, zap.Error(out.Err))...)
		return
	}
	p.logger.Debug("transcript processed", fields...)
}

// guard wraps an extractor so a panic becomes an error
func guard(ctx context.Context, name string, fn func()) func() error {
	return func() (err error) {
		_, span := startExtractorSpan(ctx, name)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s extractor panic: %v", name, r)
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s extractor: %w", name, err)
		}
		fn()
		return nil
	}
}

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// cleanText normalizes line endings, collapses runs of blank lines and trims
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = excessBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// looksLikeText rejects binary input: invalid UTF-8, NUL bytes, or more
// than 10% control characters.
func looksLikeText(s string) bool {
	if s == "" {
		return true
	}
	if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
		return false
	}
	var total, control int
	for _, r := range s {
		total++
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			control++
		}
	}
	return control*10 <= total
}
