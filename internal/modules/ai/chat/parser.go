package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

var (
	ErrProvider      = errors.New("text provider error")
	ErrEmptyResponse = errors.New("empty completion")
)

type Response interface {
	Text() string
	Succeed() bool
	GetError() error
	SetCompletion(completion, stopReason string)
	SetDuration(d time.Duration)
	SetError(err error)
}

type Parser interface {
	Parse(body []byte, response Response) error
}

type CommonResponse struct {
	Model      string        `json:"model"`
	Completion string        `json:"completion"`
	StopReason string        `json:"stop_reason"`
	Duration   time.Duration `json:"duration"`
	Error      error         `json:"-"`
}

func (c *CommonResponse) Text() string                { return c.Completion }
func (c *CommonResponse) Succeed() bool               { return c.Error == nil && c.Completion != "" }
func (c *CommonResponse) GetError() error             { return c.Error }
func (c *CommonResponse) SetDuration(d time.Duration) { c.Duration = d }
func (c *CommonResponse) SetError(err error)          { c.Error = err }
func (c *CommonResponse) SetCompletion(completion, stopReason string) {
	c.Completion = completion
	c.StopReason = stopReason
}

type CommonParser struct{}

func (c *CommonParser) Parse(body []byte, response Response) error {
	var s struct {
		Completion string `json:"completion"`
		StopReason string `json:"stop_reason"`
	}
	if err := jsoniter.Unmarshal(body, &s); err != nil {
		logs.Logger.Warn().Err(err).Str("body", string(body)).Msg("chat resp error")
		return fmt.Errorf("%w: malformed completion: %v", ErrProvider, err)
	}
	response.SetCompletion(strings.TrimSpace(s.Completion), s.StopReason)
	if !response.Succeed() {
		response.SetError(ErrEmptyResponse)
	}
	return nil
}
