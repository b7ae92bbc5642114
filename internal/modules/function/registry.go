package function

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/consts"
)

// Func takes a JSON request record and returns a JSON response record.
type Func func(ctx context.Context, payload []byte) ([]byte, error)

// Registry maps every function name to its raw JSON entrypoint.
func (h *Handlers) Registry() map[consts.Function]Func {
	return map[consts.Function]Func{
		consts.GenerateImage:  bind(h.GenerateImage),
		consts.Outpaint:       bind(h.Outpaint),
		consts.OptimizePrompt: bind(h.OptimizePrompt),
		consts.SavePrompt:     bind(h.SavePrompt),
		consts.AddLabel:       bind(h.AddLabel),
	}
}

func (h *Handlers) Lookup(name consts.Function) (Func, error) {
	fn, ok := h.Registry()[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}
	return fn, nil
}

// bind decodes the payload into the handler's request type. A payload that is
// not a JSON object is answered with a 400 record, never a transport error.
func bind[T any](handle func(context.Context, T) Response) Func {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		var req T
		var resp Response
		if err := jsoniter.Unmarshal(payload, &req); err != nil {
			resp = Response{StatusCode: http.StatusBadRequest, Message: fmt.Sprintf("Invalid request payload: %v", err)}
		} else {
			resp = handle(ctx, req)
		}
		return jsoniter.Marshal(resp)
	}
}
