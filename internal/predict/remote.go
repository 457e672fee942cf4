package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteModel calls a model-serving endpoint at <BaseURL>/predict/<slug>.
type RemoteModel struct {
	BaseURL string
	Kind    Kind
	Client  *http.Client
}

type remoteRequest struct {
	Features []float64 `json:"features"`
}

type remoteResponse struct {
	Prediction []int  `json:"prediction"`
	Error      string `json:"error,omitempty"`
}

// NewRemoteModels builds one RemoteModel per kind sharing a client.
func NewRemoteModels(baseURL string, timeout time.Duration) map[Kind]Model {
	client := &http.Client{Timeout: timeout}
	models := make(map[Kind]Model, len(Kinds))
	for _, k := range Kinds {
		models[k] = &RemoteModel{BaseURL: baseURL, Kind: k, Client: client}
	}
	return models
}

func (m *RemoteModel) Predict(ctx context.Context, features []float64) ([]int, error) {
	body, err := json.Marshal(remoteRequest{Features: features})
	if err != nil {
		return nil, fmt.Errorf("marshal features: %w", err)
	}

	url := strings.TrimRight(m.BaseURL, "/") + "/predict/" + m.Kind.Slug()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var out remoteResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("model service: %s", out.Error)
	}
	return out.Prediction, nil
}
