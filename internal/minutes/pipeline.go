package minutes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/docx"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// ProcessAll discovers recordings, processes them one at a time and writes the run summary
func (p *implPipeline) ProcessAll(ctx context.Context) (RunSummary, error) {
	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	recordings, err := Discover(p.opts.InputDir, p.opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("discover recordings: %w", err)
	}

	if len(recordings) == 0 {
		p.logger.Info(ctx, "No %s files found in %s", p.opts.Extension, p.opts.InputDir)
		return nil, nil
	}

	p.logger.Info(ctx, "Found %d %s files. Starting processing...", len(recordings), p.opts.Extension)

	summary := make(RunSummary, 0, len(recordings))
	for i, rec := range recordings {
		p.logger.Info(ctx, "[%d/%d] Processing %s", i+1, len(recordings), filepath.Base(rec.Path))
		summary = append(summary, p.ProcessRecording(ctx, rec))
	}

	summaryPath := filepath.Join(p.opts.OutputDir, SummaryFileName)
	if err := writeSummary(summaryPath, summary); err != nil {
		return summary, fmt.Errorf("write summary: %w", err)
	}

	p.logger.Info(ctx, "Processing complete: %d succeeded, %d failed", summary.Succeeded(), len(summary)-summary.Succeeded())
	p.logger.Info(ctx, "All processing finished. Summary: %s", summaryPath)
	return summary, nil
}

// ProcessRecording runs transcription and minutes generation for one recording.
// Stage failures become error text in the artifacts; write failures and
// panics end the recording with Success=false.
func (p *implPipeline) ProcessRecording(ctx context.Context, rec Recording) (result ProcessingResult) {
	result = ProcessingResult{
		InputFile: rec.Path,
		Timestamp: p.now().Format(timestampLayout),
	}

	fail := func(err error) ProcessingResult {
		msg := err.Error()
		result.Success = false
		result.Error = &msg
		p.logger.Error(ctx, "Failed to process %s: %v", rec.Path, err)
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			result = fail(fmt.Errorf("panic: %v", r))
		}
	}()

	startTime := time.Now()

	// Step 1: Transcribe
	transcript := p.transcribe(ctx, rec)

	transcriptPath := filepath.Join(p.opts.OutputDir, rec.Name+"_transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0644); err != nil {
		return fail(fmt.Errorf("write transcript: %w", err))
	}
	result.TranscriptPath = &transcriptPath

	// Step 2: Generate minutes from whatever the transcript stage produced
	minutes := p.generateMinutes(ctx, transcript)

	minutesPath := filepath.Join(p.opts.OutputDir, rec.Name+"_minutes.md")
	if err := os.WriteFile(minutesPath, []byte(minutes), 0644); err != nil {
		return fail(fmt.Errorf("write minutes: %w", err))
	}
	result.MinutesPath = &minutesPath
	result.Success = true

	if p.opts.ExportDocx {
		p.exportDocx(ctx, minutes, filepath.Join(p.opts.OutputDir, rec.Name+"_minutes.docx"))
	}

	p.logger.Info(ctx, "Minutes written: %s (%s)", minutesPath, time.Since(startTime).Round(time.Millisecond))
	return result
}

// exportDocx is best-effort and never changes the recording's result
func (p *implPipeline) exportDocx(ctx context.Context, minutes, docxPath string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn(ctx, "Failed to export %s: panic: %v", docxPath, r)
		}
	}()

	if err := docx.WriteMinutes(minutes, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to export %s: %v", docxPath, err)
	}
}

// transcribe never fails: errors come back as text starting with TranscriptionErrorPrefix
func (p *implPipeline) transcribe(ctx context.Context, rec Recording) string {
	p.logger.Info(ctx, "Transcribing %s (language: %s)", filepath.Base(rec.Path), p.opts.Language)

	text, err := p.transcriber.Transcribe(ctx, rec.Path, p.opts.Language)
	if err != nil {
		p.logger.Error(ctx, "Transcription failed for %s: %v", rec.Path, err)
		return TranscriptionErrorPrefix + err.Error()
	}
	return text
}

// generateMinutes never fails: errors come back as text starting with GenerationErrorPrefix
func (p *implPipeline) generateMinutes(ctx context.Context, transcript string) string {
	p.logger.Info(ctx, "Generating minutes")

	text, err := p.generator.Generate(ctx, BuildPrompt(transcript), p.opts.MaxOutputTokens)
	if err != nil {
		p.logger.Error(ctx, "Minutes generation failed: %v", err)
		return GenerationErrorPrefix + err.Error()
	}
	return text
}

func writeSummary(path string, summary RunSummary) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
