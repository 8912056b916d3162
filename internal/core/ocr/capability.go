package ocr

import (
	"errors"

	"github.com/rs/zerolog"
)

// Component names reported in Capability.Missing.
const (
	ComponentRasterizer = "go-fitz (MuPDF rasterizer)"
	ComponentEngine     = "gosseract (Tesseract bindings)"
	ComponentCodec      = "png image codec"
	ComponentRuntime    = "Tesseract OCR runtime"
)

// Capability is the immutable result of the start-up OCR probe.
type Capability struct {
	Available bool     `json:"ocr_available"`
	Missing   []string `json:"missing_dependencies"`
}

// Available returns a descriptor that reports OCR as usable.
func Available() Capability {
	return Capability{Available: true, Missing: []string{}}
}

// Unavailable returns a descriptor listing the missing components.
func Unavailable(missing ...string) Capability {
	return Capability{Available: false, Missing: append([]string(nil), missing...)}
}

// MissingComponents returns a copy of the missing component list.
func (c Capability) MissingComponents() []string {
	return append([]string(nil), c.Missing...)
}

// Probe checks the rasterizer, the engine bindings and the image codec first.
// Only when all three are present is the engine runtime itself exercised,
// so a build without OCR support is not also reported as a broken runtime.
func Probe(r Rasterizer, rec Recognizer, logger zerolog.Logger) Capability {
	var missing []string

	if err := r.Probe(); err != nil {
		logger.Warn().Err(err).Str("component", ComponentRasterizer).Msg("ocr probe failed")
		missing = append(missing, ComponentRasterizer)
	}

	engineErr := rec.Probe()
	if errors.Is(engineErr, ErrNotCompiled) {
		logger.Warn().Err(engineErr).Str("component", ComponentEngine).Msg("ocr probe failed")
		missing = append(missing, ComponentEngine)
	}

	if err := probeCodec(); err != nil {
		logger.Warn().Err(err).Str("component", ComponentCodec).Msg("ocr probe failed")
		missing = append(missing, ComponentCodec)
	}

	if len(missing) > 0 {
		return Unavailable(missing...)
	}

	if engineErr != nil {
		logger.Warn().Err(engineErr).Str("component", ComponentRuntime).Msg("ocr probe failed")
		return Unavailable(ComponentRuntime)
	}

	logger.Info().Msg("ocr dependencies available")
	return Available()
}
