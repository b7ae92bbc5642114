package image

type Request interface {
	Body() ([]byte, error)
	InitResponse(modelID string) Response
}

type B64ParseStrategy interface {
	ExtractB64s(body []byte) ([]string, error)
}
