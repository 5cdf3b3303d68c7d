package transcriber

import "context"

// Transcriber converts one audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
