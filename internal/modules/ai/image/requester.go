package image

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

const contentTypeJSON = "application/json"

type SyncRequester struct {
	ctx     context.Context
	runtime ai.Runtime
	ModelID string
	Request Request
	Parser  Parser
}

func NewRequester(ctx context.Context, runtime ai.Runtime, modelID string, request Request, parser Parser) *SyncRequester {
	return &SyncRequester{
		ctx:     ctx,
		runtime: runtime,
		ModelID: modelID,
		Request: request,
		Parser:  parser,
	}
}

// Do performs exactly one model invocation. Failures are reported through
// Response.GetError, never retried.
func (r *SyncRequester) Do() Response {
	ret := r.Request.InitResponse(r.ModelID)
	body, err := r.Request.Body()
	if err != nil {
		ret.SetError(err)
		return ret
	}
	reqAt := time.Now()
	out, err := r.runtime.InvokeModel(r.ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(r.ModelID),
		Accept:      aws.String(contentTypeJSON),
		ContentType: aws.String(contentTypeJSON),
		Body:        body,
	})
	respAt := time.Now()
	ret.SetReqAt(reqAt)
	ret.SetRespAt(respAt)
	if err != nil {
		logs.Logger.Error().Err(err).
			Str("model_id", r.ModelID).
			Dur("req_consume_ms", respAt.Sub(reqAt)).
			Msg("image request failed")
		ret.SetError(DetectError(err))
		return ret
	}
	logs.Logger.Info().
		Str("model_id", r.ModelID).
		Int("body_len", len(out.Body)).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("image request")
	if err = r.Parser.Parse(out.Body, ret); err != nil {
		ret.SetError(fmt.Errorf("%w: %v", ErrProvider, err))
	}
	return ret
}
