package invoker

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/function"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

type LambdaAPI interface {
	Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error)
}

// Lambda invokes deployed functions synchronously.
type Lambda struct {
	client    LambdaAPI
	functions config.Functions
}

func NewLambda(client LambdaAPI, functions config.Functions) *Lambda {
	return &Lambda{client: client, functions: functions}
}

func NewLambdaFromConfig(cfg aws.Config, functions config.Functions) *Lambda {
	return NewLambda(awslambda.NewFromConfig(cfg), functions)
}

func (l *Lambda) Invoke(ctx context.Context, name consts.Function, request any) (function.Response, error) {
	arn := l.functions.ARN(name)
	if arn == "" {
		return function.Response{}, fmt.Errorf("no function configured for %s", name)
	}
	body, err := jsoniter.Marshal(request)
	if err != nil {
		return function.Response{}, fmt.Errorf("marshal %s request: %w", name, err)
	}
	start := time.Now()
	out, err := l.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(arn),
		InvocationType: lambdatypes.InvocationTypeRequestResponse,
		Payload:        body,
	})
	if err != nil {
		return function.Response{}, fmt.Errorf("invoke %s: %w", name, err)
	}
	logs.Logger.Info().Str("function", name.String()).
		Int32("status_code", out.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("lambda invoked")
	if out.FunctionError != nil {
		return function.Response{}, fmt.Errorf("%w: %s %s: %s", ErrFunction, name, aws.ToString(out.FunctionError), string(out.Payload))
	}
	var resp function.Response
	if err = jsoniter.Unmarshal(out.Payload, &resp); err != nil {
		return function.Response{}, fmt.Errorf("unmarshal %s response: %w", name, err)
	}
	return resp, nil
}
