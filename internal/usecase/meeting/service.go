package meeting

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-recap/internal/domain/repositories"
	"github.com/johnquangdev/meeting-recap/pkg/jobcontext"
)

const jobTypeProcess = "transcript.process"

// Service processes transcripts and manages stored results
type Service interface {
	// Extract runs the pipeline without storing anything
	Extract(ctx context.Context, sub entities.Submission) (entities.MeetingRecord, error)
	// Process runs the pipeline and stores the record under a new ID
	Process(ctx context.Context, sub entities.Submission) (*entities.StoredRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Observer receives one callback per pipeline run
type Observer interface {
	ObserveRun(format, stage string, duration time.Duration, record entities.MeetingRecord)
}

// ServiceConfig holds the service limits
type ServiceConfig struct {
	ResultTTL          time.Duration
	MaxTranscriptBytes int
	JobTimeout         time.Duration
}

type meetingService struct {
	pipeline *Pipeline
	records  domainrepo.RecordRepository
	archive  domainrepo.TranscriptArchive
	observer Observer
	cfg      ServiceConfig
	logger   *zap.Logger
}

// NewService constructs a new meeting service. archive and observer are optional.
func NewService(
	pipeline *Pipeline,
	records domainrepo.RecordRepository,
	archive domainrepo.TranscriptArchive,
	observer Observer,
	cfg ServiceConfig,
	logger *zap.Logger,
) Service {
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &meetingService{
		pipeline: pipeline,
		records:  records,
		archive:  archive,
		observer: observer,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *meetingService) Extract(ctx context.Context, sub entities.Submission) (entities.MeetingRecord, error) {
	sub, err := s.prepare(sub)
	if err != nil {
		return entities.MeetingRecord{}, err
	}
	return s.run(ctx, sub).Record, nil
}

func (s *meetingService) Process(ctx context.Context, sub entities.Submission) (*entities.StoredRecord, error) {
	sub, err := s.prepare(sub)
	if err != nil {
		return nil, err
	}

	jobID := uuid.New()
	jobCtx, cancel := jobcontext.JobBegin(ctx, jobID, jobTypeProcess, s.cfg.JobTimeout)
	defer cancel()

	if s.logger != nil {
		s.logger.Info("📥 Processing transcript",
			append(jobcontext.Fields(jobCtx),
				zap.String("source", sub.SourceName),
				zap.String("format_hint", sub.Format.String()),
				zap.Int("bytes", len(sub.Content)),
			)...,
		)
	}

	out := s.run(jobCtx, sub)

	stored := entities.NewStoredRecord(out.Record, out.Format, s.cfg.ResultTTL)
	stored.ID = jobID
	stored.SourceName = sub.SourceName

	if s.archive != nil {
		stored.ArchiveKey = s.archiveTranscript(jobCtx, jobID, sub)
	}

	if err := jobcontext.JobEnd(jobCtx, func(ctx context.Context) error {
		return s.records.Save(ctx, stored)
	}); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to store meeting record", append(jobcontext.Fields(jobCtx), zap.Error(err))...)
		}
		return nil, fmt.Errorf("save meeting record: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting record stored",
			append(jobcontext.Fields(jobCtx),
				zap.String("stage", string(out.Stage)),
				zap.String("format", out.Format.String()),
				zap.Time("expires_at", stored.ExpiresAt),
			)...,
		)
	}
	return stored, nil
}

func (s *meetingService) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	stored, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get meeting record %s: %w", id, err)
	}
	if stored.Expired(time.Now()) {
		return nil, entities.ErrRecordNotFound
	}
	return stored, nil
}

func (s *meetingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("delete meeting record %s: %w", id, err)
	}
	return nil
}

// prepare resolves demo submissions and enforces input limits
func (s *meetingService) prepare(sub entities.Submission) (entities.Submission, error) {
	if sub.UseDemo {
		sub.Content = SampleTranscript
		sub.Format = entities.TranscriptFormatTXT
		sub.SourceName = SampleTranscriptName
	}
	if strings.TrimSpace(sub.Content) == "" {
		return sub, entities.ErrEmptyTranscript
	}
	if s.cfg.MaxTranscriptBytes > 0 && len(sub.Content) > s.cfg.MaxTranscriptBytes {
		return sub, entities.ErrTranscriptTooLarge
	}
	if sub.Format == entities.TranscriptFormatUnknown && sub.SourceName != "" {
		sub.Format = entities.FormatFromFileName(sub.SourceName)
	}
	return sub, nil
}

func (s *meetingService) run(ctx context.Context, sub entities.Submission) Outcome {
	out := s.pipeline.Run(ctx, sub.Content, sub.Format)
	if s.observer != nil {
		s.observer.ObserveRun(out.Format.String(), string(out.Stage), out.Duration, out.Record)
	}
	return out
}

// archiveTranscript stores the raw upload. Archive failures are logged and
// do not fail the request.
func (s *meetingService) archiveTranscript(ctx context.Context, id uuid.UUID, sub entities.Submission) string {
	name := path.Base(sub.SourceName)
	if name == "" || name == "." || name == "/" {
		name = "transcript." + extensionFor(sub.Format)
	}
	key := fmt.Sprintf("transcripts/%s/%s", id, name)

	var archived string
	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		k, err := s.archive.Archive(ctx, key, sub.Content)
		archived = k
		return err
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to archive transcript", append(jobcontext.Fields(ctx), zap.Error(err))...)
		}
		return ""
	}
	return archived
}

func extensionFor(format entities.TranscriptFormat) string {
	switch format {
	case entities.TranscriptFormatCSV, entities.TranscriptFormatJSON:
		return string(format)
	default:
		return "txt"
	}
}
