package minutes

import "context"

const (
	// TranscriptionErrorPrefix starts the transcript text written when speech-to-text fails
	TranscriptionErrorPrefix = "音声認識エラー: "
	// GenerationErrorPrefix starts the minutes text written when the language model fails
	GenerationErrorPrefix = "議事録生成エラー: "

	SummaryFileName = "processing_summary.json"
)

// Pipeline drives recordings through transcription and minutes generation.
type Pipeline interface {
	// ProcessAll handles every recording in the input directory and writes the
	// run summary. It returns a nil summary when no recordings were found.
	ProcessAll(ctx context.Context) (RunSummary, error)
	ProcessRecording(ctx context.Context, rec Recording) ProcessingResult
}
