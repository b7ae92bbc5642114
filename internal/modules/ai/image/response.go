package image

import "time"

type Response interface {
	GetModel() string
	GetSeed() int64
	GetB64s() []string
	GetError() error // is nil if Succeed() return true
	Succeed() bool
	ReqConsumeMs() int64

	SetReqAt(reqAt time.Time)
	SetRespAt(respAt time.Time)
	SetB64s(b64s []string)
	SetError(err error)
}

type BaseResponse struct {
	Model  string    `json:"model"`
	Seed   int64     `json:"seed"`
	ReqAt  time.Time `json:"req_at"`
	RespAt time.Time `json:"resp_at"`
	B64s   []string  `json:"b64s"`
	Error  error     `json:"error,omitempty"`
}

func (r *BaseResponse) GetModel() string    { return r.Model }
func (r *BaseResponse) GetSeed() int64      { return r.Seed }
func (r *BaseResponse) GetB64s() []string   { return r.B64s }
func (r *BaseResponse) GetError() error     { return r.Error }
func (r *BaseResponse) Succeed() bool       { return r.Error == nil && len(r.B64s) != 0 }
func (r *BaseResponse) ReqConsumeMs() int64 { return r.RespAt.Sub(r.ReqAt).Milliseconds() }

func (r *BaseResponse) SetReqAt(reqAt time.Time)   { r.ReqAt = reqAt }
func (r *BaseResponse) SetRespAt(respAt time.Time) { r.RespAt = respAt }
func (r *BaseResponse) SetB64s(b64s []string)      { r.B64s = b64s }
func (r *BaseResponse) SetError(err error)         { r.Error = err }

// FirstB64 is the single artifact every request here asks for.
func FirstB64(r Response) string {
	if b64s := r.GetB64s(); len(b64s) != 0 {
		return b64s[0]
	}
	return ""
}
