package image

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

var (
	ErrProvider        = errors.New("image provider error")
	ErrNoImage         = errors.New("no image in provider response")
	ErrContentFiltered = errors.New("request blocked by the provider content filters")
)

var contentFilterMarkers = []string{
	"content filters",
	"CONTENT_FILTERED",
	"may contain content that is not allowed",
}

type Parser interface {
	Parse(body []byte, response Response) error
}

type GenericParser struct {
	b64Strategy B64ParseStrategy
}

func NewGenericParser(b64Strategy B64ParseStrategy) *GenericParser {
	return &GenericParser{b64Strategy: b64Strategy}
}

func (g *GenericParser) Parse(body []byte, response Response) error {
	b64s, err := g.b64Strategy.ExtractB64s(body)
	if err != nil {
		logs.Logger.Warn().Err(err).
			Str("model", response.GetModel()).
			Int("body_len", len(body)).
			Msg("image resp error")
		response.SetError(DetectError(err))
		return nil
	}
	response.SetB64s(b64s)
	if !response.Succeed() {
		response.SetError(ErrNoImage)
	}
	return nil
}

// DetectError classifies a provider failure; the result always wraps ErrProvider
// or ErrContentFiltered.
func DetectError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrContentFiltered) || errors.Is(err, ErrProvider) || errors.Is(err, ErrNoImage) {
		return err
	}
	for _, marker := range contentFilterMarkers {
		if strings.Contains(err.Error(), marker) {
			return fmt.Errorf("%w: %s", ErrContentFiltered, err.Error())
		}
	}
	return fmt.Errorf("%w: %s", ErrProvider, err.Error())
}
