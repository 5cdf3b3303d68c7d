package minutes

import (
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/generator"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

// Options holds the per-run settings of a Pipeline.
type Options struct {
	InputDir        string
	OutputDir       string
	Extension       string
	Language        string
	MaxOutputTokens int
	ExportDocx      bool
}

type implPipeline struct {
	opts        Options
	transcriber transcriber.Transcriber
	generator   generator.Generator
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Pipeline. The transcriber and generator are shared by every
// recording of the run.
func New(opts Options, tr transcriber.Transcriber, gen generator.Generator, log logger.Logger) Pipeline {
	return &implPipeline{
		opts:        opts,
		transcriber: tr,
		generator:   gen,
		logger:      log,
		now:         time.Now,
	}
}
