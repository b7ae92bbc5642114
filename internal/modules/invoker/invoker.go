package invoker

import (
	"context"
	"errors"

	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/function"
)

// ErrFunction means the function itself crashed rather than answering with
// a status code.
var ErrFunction = errors.New("function error")

// Invoker calls one of the five functions with a request record and returns
// its response record. A non-nil error is a transport or crash failure; status
// codes travel inside the response.
type Invoker interface {
	Invoke(ctx context.Context, name consts.Function, request any) (function.Response, error)
}
