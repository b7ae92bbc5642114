package invoker

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/function"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

// Local dispatches to in-process handlers through the same JSON records the
// deployed functions use.
type Local struct {
	registry map[consts.Function]function.Func
}

func NewLocal(registry map[consts.Function]function.Func) *Local {
	return &Local{registry: registry}
}

func (l *Local) Invoke(ctx context.Context, name consts.Function, request any) (function.Response, error) {
	fn, ok := l.registry[name]
	if !ok {
		return function.Response{}, fmt.Errorf("no function registered for %s", name)
	}
	body, err := jsoniter.Marshal(request)
	if err != nil {
		return function.Response{}, fmt.Errorf("marshal %s request: %w", name, err)
	}
	out, err := fn(ctx, body)
	if err != nil {
		return function.Response{}, fmt.Errorf("%w: %s: %v", ErrFunction, name, err)
	}
	var resp function.Response
	if err = jsoniter.Unmarshal(out, &resp); err != nil {
		return function.Response{}, fmt.Errorf("unmarshal %s response: %w", name, err)
	}
	logs.Logger.Debug().Str("function", name.String()).Int("status_code", resp.StatusCode).Msg("local invoke")
	return resp, nil
}
