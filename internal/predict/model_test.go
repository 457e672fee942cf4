package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLinearModelPredict(t *testing.T) {
	m := &LinearModel{
		Weights:   []float64{1, -1},
		Intercept: 0,
		Mean:      []float64{1, 1},
		Scale:     []float64{2, 2},
	}
	if err := m.Validate(2); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	out, err := m.Predict(context.Background(), []float64{5, 1})
	if err != nil || out[0] != 1 {
		t.Fatalf("Predict(positive) = %v, %v", out, err)
	}
	out, err = m.Predict(context.Background(), []float64{1, 5})
	if err != nil || out[0] != 0 {
		t.Fatalf("Predict(negative) = %v, %v", out, err)
	}
	if _, err := m.Predict(context.Background(), []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestLinearModelValidate(t *testing.T) {
	if err := (&LinearModel{Weights: []float64{1}}).Validate(2); err == nil {
		t.Fatal("expected weight count error")
	}
	if err := (&LinearModel{Weights: []float64{1}, Scale: []float64{0}}).Validate(1); err == nil {
		t.Fatal("expected zero scale error")
	}
}

func writeModel(t *testing.T, dir string, k Kind, m LinearModel) {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, k.Slug()+".json"), data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadModelDir(t *testing.T) {
	dir := t.TempDir()
	for _, k := range Kinds {
		writeModel(t, dir, k, LinearModel{Kind: k.Slug(), Weights: make([]float64, FeatureCount(k)), Intercept: 1})
	}
	models, err := LoadModelDir(dir)
	if err != nil {
		t.Fatalf("LoadModelDir: %v", err)
	}
	if len(models) != len(Kinds) {
		t.Fatalf("loaded %d models", len(models))
	}
}

func TestLoadLinearModelRejectsMismatch(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, Diabetes, LinearModel{Kind: "heart", Weights: make([]float64, 8)})
	if _, err := LoadLinearModel(filepath.Join(dir, "diabetes.json"), Diabetes); err == nil {
		t.Fatal("expected kind mismatch error")
	}
	writeModel(t, dir, Diabetes, LinearModel{Weights: make([]float64, 7)})
	if _, err := LoadLinearModel(filepath.Join(dir, "diabetes.json"), Diabetes); err == nil {
		t.Fatal("expected weight count error")
	}
	if _, err := LoadLinearModel(filepath.Join(dir, "missing.json"), Diabetes); err == nil {
		t.Fatal("expected read error")
	}
}

func TestRemoteModelPredict(t *testing.T) {
	var gotPath string
	var gotFeatures []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req remoteRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotFeatures = req.Features
		_, _ = w.Write([]byte(`{"prediction":[1]}`))
	}))
	defer srv.Close()

	models := NewRemoteModels(srv.URL+"/", time.Second)
	out, err := models[HeartDisease].Predict(context.Background(), []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(out) != 1 || out[0] != 1 {
		t.Fatalf("output = %v", out)
	}
	if gotPath != "/predict/heart" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(gotFeatures) != 3 || gotFeatures[2] != 3 {
		t.Fatalf("features = %v", gotFeatures)
	}
}

func TestRemoteModelErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "status", status: http.StatusInternalServerError, body: "down", wantErr: "returned 500"},
		{name: "service error", status: http.StatusOK, body: `{"error":"model not loaded"}`, wantErr: "model not loaded"},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			m := &RemoteModel{BaseURL: srv.URL, Kind: Diabetes}
			_, err := m.Predict(context.Background(), []float64{1})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Predict err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
