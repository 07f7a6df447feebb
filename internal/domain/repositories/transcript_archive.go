package repositories

import "context"

// TranscriptArchive keeps a copy of raw uploaded transcripts
type TranscriptArchive interface {
	// Archive stores content under key and returns the object key actually used
	Archive(ctx context.Context, key string, content string) (string, error)
}
