package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
	"github.com/RealZimboGuy/relvalmatrix/internal/engine"
	"github.com/RealZimboGuy/relvalmatrix/internal/util"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/models"
)

func publish(mux *http.ServeMux, apiKey string) *http.Response {
	req := httptest.NewRequest("POST", "/api/publications", nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w.Result()
}

func TestPublicationsController_Publish(t *testing.T) {
	publisher := &MockPublisher{
		PublishFunc: func(ctx context.Context) (*domain.Publication, bool, error) {
			return &domain.Publication{ID: "pub-1", Fingerprint: "abc", WorkflowCount: 42}, true, nil
		},
	}
	mux := newTestMux(&MockCatalogReader{}, publisher, hashKey(t, "secret"))

	resp := publish(mux, "secret")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}
	body, err := util.DecodeJSONBodyResponse[models.PublishResponse](resp)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Created || body.Publication.ID != "pub-1" || body.Publication.WorkflowCount != 42 {
		t.Errorf("Unexpected response %+v", body)
	}
}

func TestPublicationsController_AlreadyPublished(t *testing.T) {
	publisher := &MockPublisher{
		PublishFunc: func(ctx context.Context) (*domain.Publication, bool, error) {
			return &domain.Publication{ID: "pub-1"}, false, nil
		},
	}
	resp := publish(newTestMux(&MockCatalogReader{}, publisher, hashKey(t, "secret")), "secret")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestPublicationsController_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid catalog", fmt.Errorf("%w: workflow 507 has no steps", catalog.ErrInvalidCatalog), http.StatusUnprocessableEntity},
		{"renumbered", fmt.Errorf("%w: scenario 2017/2017 was published as 10000 and is now 10200", engine.ErrNumberingChanged), http.StatusConflict},
		{"store", fmt.Errorf("commit transaction: disk full"), http.StatusInternalServerError},
	}
	hash := hashKey(t, "secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &MockPublisher{
				PublishFunc: func(ctx context.Context) (*domain.Publication, bool, error) {
					return nil, false, tt.err
				},
			}
			resp := publish(newTestMux(&MockCatalogReader{}, publisher, hash), "secret")
			if resp.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestPublicationsController_RequiresKey(t *testing.T) {
	publisher := &MockPublisher{}
	mux := newTestMux(&MockCatalogReader{}, publisher, hashKey(t, "secret"))

	if resp := publish(mux, ""); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
	if resp := publish(mux, "guess"); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
	if resp := serve(mux, "GET", "/api/publications"); resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", resp.StatusCode)
	}
	if publisher.calls != 0 {
		t.Errorf("Expected no publish calls, got %d", publisher.calls)
	}
}
