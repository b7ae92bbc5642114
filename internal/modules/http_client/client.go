package http_client

import (
	"net/http"
	"time"
)

// HttpClient is handed to the AWS SDK as its transport, so every Bedrock,
// Lambda and DynamoDB call shares one timeout policy.
type HttpClient struct {
	HttpClient *http.Client
}

func NewWithTimeout(timeout time.Duration) *HttpClient {
	return &HttpClient{
		HttpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HttpClient) Do(req *http.Request) (*http.Response, error) {
	return c.HttpClient.Do(req)
}
