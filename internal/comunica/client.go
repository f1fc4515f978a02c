// Package comunica queries the judicial-communications API for notification records.
package comunica

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"consultapje/internal/logger"
	"consultapje/internal/models"
	"consultapje/pkg/utils"
)

// Query parameter names understood by the API.
const (
	ParamBarNumber = "numeroOab"
	ParamBarState  = "ufOab"
	ParamStart     = "dataDisponibilizacaoInicio"
	ParamEnd       = "dataDisponibilizacaoFim"
	ParamPageSize  = "itensPorPagina"
)

// Transport errors.
var (
	ErrRequestFailed        = errors.New("request failed")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// Client issues the notification query. It performs exactly one attempt per call.
type Client struct {
	http     *resty.Client
	helper   *utils.HTTPHelper
	endpoint string
	logger   *logger.Logger
}

// Options configures a Client.
type Options struct {
	Endpoint  string
	UserAgent string
	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration
}

// NewClient creates a query client for the given endpoint.
func NewClient(opts Options, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}

	helper := utils.NewHTTPHelper(opts.UserAgent)
	headers := helper.BuildHeaders(nil)

	rc := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", headers.Get("Accept")).
		SetHeader("User-Agent", headers.Get("User-Agent"))

	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	return &Client{
		http:     rc,
		helper:   helper,
		endpoint: opts.Endpoint,
		logger:   log,
	}
}

// BuildParams returns the query parameters for identity and window.
func BuildParams(identity models.QueryIdentity, window models.QueryWindow) map[string]string {
	return map[string]string{
		ParamBarNumber: identity.BarNumber,
		ParamBarState:  identity.BarState,
		ParamStart:     window.Start,
		ParamEnd:       window.End,
		ParamPageSize:  strconv.Itoa(identity.PageSize),
	}
}

// Query fetches one page of notifications for the window.
// Any transport error, non-2xx status or undecodable body is returned as an error.
func (c *Client) Query(ctx context.Context, identity models.QueryIdentity, window models.QueryWindow) (*models.Payload, error) {
	c.logger.Info(fmt.Sprintf("Consultando API para o período de %s a %s", window.Start, window.End),
		"oab", identity.BarNumber+"/"+identity.BarState)

	payload, err := c.query(ctx, identity, window)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Erro ao consultar API: %v", err))

		return nil, err
	}

	return payload, nil
}

func (c *Client) query(ctx context.Context, identity models.QueryIdentity, window models.QueryWindow) (*models.Payload, error) {
	if !c.helper.IsValidURL(c.endpoint) {
		return nil, fmt.Errorf("%w: invalid endpoint %q", ErrRequestFailed, c.endpoint)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(BuildParams(identity, window)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode())
	}

	c.logger.Debug("API respondeu", "status", resp.StatusCode(), "bytes", len(resp.Body()), "duration", resp.Time())

	return DecodePayload(resp.Body())
}
