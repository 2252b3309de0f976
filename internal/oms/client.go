package oms

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rookgm/orderproc/internal/models"
)

// ordersPath is the OMS endpoint accepting new orders.
const ordersPath = "/orders"

// retryDelays is the backoff schedule for failed dispatch attempts.
var retryDelays = []time.Duration{3 * time.Second, 7 * time.Second, 12 * time.Second}

// Client sends accepted orders to the order management system.
type Client struct {
	client *resty.Client
}

// NewClient creates an OMS client for the given base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(len(retryDelays)).
		SetRetryAfter(func(c *resty.Client, resp *resty.Response) (time.Duration, error) {
			attempt := resp.Request.Attempt
			if attempt > len(retryDelays) {
				attempt = len(retryDelays)
			}
			return retryDelays[attempt-1], nil
		})

	return &Client{client: client}
}

// SendOrder serializes the order to XML and posts it to the OMS.
func (c *Client) SendOrder(ctx context.Context, order *models.Order) error {
	body, err := xml.Marshal(newOrderDocument(order))
	if err != nil {
		return err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/xml").
		SetBody(body).
		Post(ordersPath)
	if err != nil {
		return &models.TransportError{Err: err}
	}
	if resp.IsError() {
		return &models.TransportError{StatusCode: resp.StatusCode()}
	}

	return nil
}
