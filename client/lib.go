// Package client implements a very simple wrapper for goamber's web API.
package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrBadRequest defines the "bad request" error.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError defines the "internal server error" error.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound defines the "not found" error.
	ErrNotFound = errors.New("not found")
	// ErrUnknownError defines the "unknown error" error.
	ErrUnknownError = errors.New("unknown error")
)

// NewGoAmberAPI returns a new *GoAmberAPI with the given baseURL.
func NewGoAmberAPI(baseURL string, httpClient ...*http.Client) *GoAmberAPI {
	restyClient := resty.New()
	if len(httpClient) > 0 {
		restyClient = resty.NewWithClient(httpClient[0])
	}

	return &GoAmberAPI{
		baseURL:    baseURL,
		httpClient: restyClient.SetHostURL(baseURL),
	}
}

// GoAmberAPI is an API wrapper over the web API of goamber.
type GoAmberAPI struct {
	httpClient *resty.Client
	baseURL    string
}

type errorResponse struct {
	Error string `json:"error"`
}

func interpretResponse(res *resty.Response) error {
	if res.StatusCode() == http.StatusOK || res.StatusCode() == http.StatusCreated {
		return nil
	}

	errRes, ok := res.Error().(*errorResponse)
	if !ok || errRes == nil {
		return fmt.Errorf("%w: status code %d", ErrUnknownError, res.StatusCode())
	}

	switch res.StatusCode() {
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, errRes.Error)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, errRes.Error)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errRes.Error)
	}

	return fmt.Errorf("%w: %s", ErrUnknownError, errRes.Error)
}

func (api *GoAmberAPI) do(method string, route string, reqObj interface{}, resObj interface{}) error {
	request := api.httpClient.R().SetError(&errorResponse{})
	if reqObj != nil {
		request.SetBody(reqObj)
	}
	if resObj != nil {
		request.SetResult(resObj)
	}

	res, err := request.Execute(method, route)
	if err != nil {
		return err
	}

	return interpretResponse(res)
}

// BaseURL returns the baseURL of the API.
func (api *GoAmberAPI) BaseURL() string {
	return api.baseURL
}
