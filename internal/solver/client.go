package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

// Outcome 是生成结果的三种形态之一：Success、Warning 或 Failure。
// Failure 不携带任何班次，这一点由类型本身保证
type Outcome interface {
	outcome()
}

type Success struct {
	Shifts []domain.Shift
}

type Warning struct {
	Shifts   []domain.Shift
	Warnings []domain.GenerationWarningCode
}

type Failure struct {
	Code domain.GenerationErrorCode
}

func (Success) outcome() {}
func (Warning) outcome() {}
func (Failure) outcome() {}

// Client 负责和远程求解服务通信，排班算法本身运行在远端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Generate 发起一次生成请求并解析结果。
// 结果格式不符合约定（未知的 status、Warning 却没有警告码等）时返回错误
func (c *Client) Generate(ctx context.Context, request *domain.GenerationRequest) (Outcome, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("求解服务返回了非预期的状态码 %d", resp.StatusCode)
	}

	var raw struct {
		Status   domain.GenerationStatus        `json:"status"`
		Shifts   []domain.Shift                 `json:"shifts"`
		Warnings []domain.GenerationWarningCode `json:"warnings"`
		Error    domain.GenerationErrorCode     `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	switch raw.Status {
	case domain.GenerationSuccess:
		return Success{Shifts: raw.Shifts}, nil
	case domain.GenerationWarning:
		if len(raw.Warnings) == 0 {
			return nil, fmt.Errorf("求解服务返回了 Warning 状态但没有任何警告码")
		}
		return Warning{Shifts: raw.Shifts, Warnings: raw.Warnings}, nil
	case domain.GenerationFailure:
		if raw.Error == "" {
			return nil, fmt.Errorf("求解服务返回了 Error 状态但没有错误码")
		}
		return Failure{Code: raw.Error}, nil
	default:
		return nil, fmt.Errorf("求解服务返回了未知的状态 %q", raw.Status)
	}
}

// Export 将排班表的保存格式提交给求解服务，换取电子表格文件。
// 求解服务不保存任何排班数据，文件的内部格式由它负责
func (c *Client) Export(ctx context.Context, scheduleID int64, payload domain.SavePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/schedules/%d/export", c.baseURL, scheduleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("求解服务返回了非预期的状态码 %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
