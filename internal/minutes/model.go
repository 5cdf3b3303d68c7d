package minutes

import (
	"path/filepath"
	"strings"
)

// Recording is one input audio file.
type Recording struct {
	Path string
	Name string
}

// NewRecording derives the base name (file name without extension) from path.
func NewRecording(path string) Recording {
	file := filepath.Base(path)
	return Recording{
		Path: path,
		Name: strings.TrimSuffix(file, filepath.Ext(file)),
	}
}

// ProcessingResult is the outcome for one recording. Success is true only when
// both artifacts were written; artifact paths stay nil for stages not reached.
type ProcessingResult struct {
	InputFile      string  `json:"input_file"`
	Timestamp      string  `json:"timestamp"`
	Success        bool    `json:"success"`
	TranscriptPath *string `json:"transcript_path"`
	MinutesPath    *string `json:"minutes_path"`
	Error          *string `json:"error"`
}

// RunSummary holds one result per recording, in discovery order.
type RunSummary []ProcessingResult

// Succeeded counts the successful results
func (s RunSummary) Succeeded() int {
	n := 0
	for _, r := range s {
		if r.Success {
			n++
		}
	}
	return n
}

// Failed returns only the failed results
func (s RunSummary) Failed() []ProcessingResult {
	var failed []ProcessingResult
	for _, r := range s {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}
