package mocks

import (
	"context"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// HTTPClient is a testify double for httpclient.HTTPClient.
type HTTPClient struct {
	mock.Mock
}

func (c *HTTPClient) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.response(c.Called(ctx, url, headers))
}

func (c *HTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	return c.response(c.Called(ctx, url, body, headers))
}

func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.response(c.Called(req))
}

func (c *HTTPClient) response(args mock.Arguments) (*http.Response, error) {
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}
