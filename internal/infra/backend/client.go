// Package backend は店舗バックエンドAPIのHTTPクライアント実装。
// パスは全て /api 始まり。失敗してもここでは再試行しない。
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kiosk/internal/domain/model"
	repo "kiosk/internal/repository"

	"go.uber.org/zap"
)

// バックエンドのセッションcookie名
const sessionCookieName = "session"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// DI
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// do は1回のAPI呼び出し。401は repo.ErrUnauthenticated、
// それ以外の非2xxは repo.StatusError にして返す。
func (c *Client) do(ctx context.Context, s model.Session, method string, path string, query url.Values, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: s.Token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return repo.ErrUnauthenticated
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("backend call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &repo.StatusError{
			Status: resp.StatusCode,
			Text:   strings.TrimSpace(string(text)),
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetUser(ctx context.Context, s model.Session) (model.User, error) {
	var user model.User
	if err := c.do(ctx, s, http.MethodGet, "/get_user", nil, nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) GetProducts(ctx context.Context, s model.Session) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, s, http.MethodGet, "/get_products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// 検索条件はJSONボディで渡す（読み取り系でもボディ付きPOSTに統一）
func (c *Client) QueryTransactions(ctx context.Context, s model.Session, q model.TransactionQuery) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := c.do(ctx, s, http.MethodPost, "/get_transactions", nil, q, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) GetDetailedTransaction(ctx context.Context, s model.Session, transactionID int64) (model.Transaction, error) {
	var t model.Transaction
	path := "/get_detailed_transaction/" + strconv.FormatInt(transactionID, 10)
	if err := c.do(ctx, s, http.MethodGet, path, nil, nil, &t); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

type undoTransactionRequest struct {
	TransactionID int64 `json:"transaction_id"`
}

// 成功したら呼び出し側は依存ビューを再取得すること。
func (c *Client) UndoTransaction(ctx context.Context, s model.Session, transactionID int64) error {
	return c.do(ctx, s, http.MethodPost, "/undo_transaction", nil, undoTransactionRequest{TransactionID: transactionID}, nil)
}

type usersResponse struct {
	Users []model.User `json:"users"`
}

func (c *Client) GetUsersByRole(ctx context.Context, s model.Session, role model.Role) ([]model.User, error) {
	query := url.Values{}
	query.Set("role", string(role))

	var resp usersResponse
	if err := c.do(ctx, s, http.MethodGet, "/get_users", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// 期間はstart/endのクエリパラメータ（unix秒、両方省略可）
func (c *Client) BestSellingProduct(ctx context.Context, s model.Session, tr model.TimeRange) (model.BestSellingProduct, error) {
	query := url.Values{}
	if tr.Start != nil {
		query.Set("start", strconv.FormatInt(*tr.Start, 10))
	}
	if tr.End != nil {
		query.Set("end", strconv.FormatInt(*tr.End, 10))
	}

	var p model.BestSellingProduct
	if err := c.do(ctx, s, http.MethodGet, "/stats/get_best_selling_product", query, nil, &p); err != nil {
		return model.BestSellingProduct{}, err
	}
	return p, nil
}

// 形には触らず、取れたJSONをそのまま返す
func (c *Client) Stats(ctx context.Context, s model.Session, name string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, s, http.MethodGet, "/stats/get_"+name, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
