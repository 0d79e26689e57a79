package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcarver/tix/internal/api"
	"github.com/tcarver/tix/internal/models"
)

func Test_Client_SendsAuthHeaders_When_Configured(t *testing.T) {
	t.Parallel()

	var gotKey, gotTenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotTenant = r.Header.Get("X-Tenant")
		json.NewEncoder(w).Encode(map[string]any{"items": []models.View{}})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, "secret", "acme")
	_, err := c.ListViews(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "acme", gotTenant)
}

func Test_Client_ListsViews_When_ServerReturnsItems(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tickets/views", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"items": []models.View{
			{ID: 1, Name: "Mine", IsDefault: true},
			{ID: 2, Name: "Escalations"},
		}})
	}))
	defer srv.Close()

	views, err := api.NewClient(srv.URL, "", "").ListViews(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Mine", views[0].Name)
	assert.True(t, views[0].IsDefault)
}

func Test_Client_GetsViewByID_When_Requested(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets/views/5", r.URL.Path)
		json.NewEncoder(w).Encode(models.View{
			ID:            5,
			Name:          "Open",
			Filters:       models.ViewFilters{Status: []string{"open"}},
			GroupingField: "priority",
			SortDirection: "asc",
		})
	}))
	defer srv.Close()

	view, err := api.NewClient(srv.URL, "", "").GetView(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, view.Filters.Status)
	assert.Equal(t, "priority", view.GroupingField)
}

func Test_Client_PostsCreationPayload_When_CreatingView(t *testing.T) {
	t.Parallel()

	var got models.ViewRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(models.View{ID: 9, Name: got.Name})
	}))
	defer srv.Close()

	req := models.ViewRequest{
		Name:          "Mine",
		Filters:       models.ViewFilters{Status: []string{"open"}, Priority: []string{"high"}},
		GroupingField: "status",
		SortDirection: "asc",
	}
	created, err := api.NewClient(srv.URL, "", "").CreateView(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Equal(t, req.Filters, got.Filters)
	assert.Equal(t, "status", got.GroupingField)
}

func Test_Client_TreatsAny2xxAsSuccess_When_Deleting(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tickets/views/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL, "", "").DeleteView(context.Background(), 3)

	require.NoError(t, err)
}

func Test_Client_ReturnsErrorWithExcerpt_When_ServerFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "view is referenced", http.StatusConflict)
	}))
	defer srv.Close()

	err := api.NewClient(srv.URL, "", "").DeleteView(context.Background(), 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "view is referenced")
}

func Test_Client_ReturnsError_When_ServerUnreachable(t *testing.T) {
	t.Parallel()

	c := api.NewClient("http://127.0.0.1:1", "", "")
	_, err := c.ListTickets(context.Background())

	require.Error(t, err)
}
