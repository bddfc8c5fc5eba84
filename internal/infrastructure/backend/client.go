package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
	"go.uber.org/zap"
)

// transactionDateLayout is the second-precision format the backend expects.
const transactionDateLayout = "2006-01-02 15:04:05"

// idempotencyKeyHeader carries the per-cart checkout key on submissions.
const idempotencyKeyHeader = "Idempotency-Key"

// Client talks to the upstream bakery API over JSON/HTTP. It implements
// repository.BakeryGateway.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewClient creates a gateway client for the configured base URL. The
// timeout bounds every round trip so a hung backend cannot hang a checkout.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// priceField tolerates the backend sending prices either as JSON numbers or
// as numeric strings.
type priceField string

func (p *priceField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = priceField(s)
		return nil
	}
	*p = priceField(bytes.TrimSpace(data))
	return nil
}

type productDTO struct {
	ProductID   int64      `json:"ProductID"`
	ProductName string     `json:"ProductName"`
	Price       priceField `json:"Price"`
	CategoryID  int        `json:"CategoryID"`
}

// FetchProducts retrieves the product list and normalizes prices to cents.
// A product whose price does not parse as a non-negative decimal is dropped
// with a warning rather than carried with a garbage amount.
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/api/products", nil, &dtos); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(dtos))
	for _, d := range dtos {
		price, err := money.ParseDecimal(string(d.Price))
		if err != nil {
			c.log.Warn("dropping product with unparseable price",
				zap.Int64("product_id", d.ProductID),
				zap.String("price", string(d.Price)))
			continue
		}
		products = append(products, entity.Product{
			ID:         d.ProductID,
			Name:       d.ProductName,
			Price:      price,
			CategoryID: enum.Category(d.CategoryID),
		})
	}
	return products, nil
}

// FindEmployee resolves an employee id by username. A response without an
// EmployeeID yields (0, nil).
func (c *Client) FindEmployee(ctx context.Context, username string) (int64, error) {
	var out struct {
		EmployeeID int64 `json:"EmployeeID"`
	}
	query := url.Values{"username": []string{username}}
	if err := c.get(ctx, "/api/employees", query, &out); err != nil {
		return 0, err
	}
	return out.EmployeeID, nil
}

// CurrentScheduleID returns the id of the active shift.
func (c *Client) CurrentScheduleID(ctx context.Context) (int64, error) {
	var out struct {
		ScheduleID int64 `json:"ScheduleID"`
	}
	if err := c.get(ctx, "/api/schedule/top", nil, &out); err != nil {
		return 0, err
	}
	return out.ScheduleID, nil
}

type transactionItemDTO struct {
	ProductID int64   `json:"ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"Price"`
}

type transactionDTO struct {
	EmployeeID      int64                `json:"EmployeeID"`
	ScheduleID      int64                `json:"ScheduleID"`
	TotalCost       float64              `json:"TotalCost"`
	DiscountedPrice float64              `json:"DiscountedPrice"`
	TransactionDate string               `json:"TransactionDate"`
	CashPayment     float64              `json:"CashPayment"`
	PaymentMethod   string               `json:"PaymentMethod"`
	Items           []transactionItemDTO `json:"items"`
}

// SubmitTransaction posts the sale and returns the backend's transaction id.
func (c *Client) SubmitTransaction(ctx context.Context, req *entity.TransactionRequest, idempotencyKey string) (int64, error) {
	body := transactionDTO{
		EmployeeID:      req.EmployeeID,
		ScheduleID:      req.ScheduleID,
		TotalCost:       req.TotalCost.Float64(),
		DiscountedPrice: req.DiscountedPrice.Float64(),
		TransactionDate: req.TransactionDate.Format(transactionDateLayout),
		CashPayment:     req.CashPayment.Float64(),
		PaymentMethod:   req.PaymentMethod.String(),
		Items:           make([]transactionItemDTO, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		body.Items = append(body.Items, transactionItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.Float64(),
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/transactions", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		httpReq.Header.Set(idempotencyKeyHeader, idempotencyKey)
	}

	var out struct {
		TransactionID int64 `json:"TransactionID"`
	}
	if err := c.do(httpReq, &out); err != nil {
		return 0, err
	}
	return out.TransactionID, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
