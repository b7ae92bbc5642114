package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

type Requester struct {
	runtime      ai.Runtime
	ModelID      string
	RequestTypes RequestContent
	Parser       Parser
}

func NewRequester(runtime ai.Runtime, modelID string, requestTypes RequestContent, parser Parser) *Requester {
	return &Requester{
		runtime:      runtime,
		ModelID:      modelID,
		RequestTypes: requestTypes,
		Parser:       parser,
	}
}

func (r *Requester) Do(ctx context.Context) (Response, error) {
	body, err := r.RequestTypes.Body()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := r.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(r.ModelID),
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	logs.Logger.Info().Str("model_id", r.ModelID).
		Dur("duration", duration).
		Msg("chat request")
	ret := r.RequestTypes.InitResponse(r.ModelID)
	ret.SetDuration(duration)
	if err = r.Parser.Parse(out.Body, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
