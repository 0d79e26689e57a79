package server_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcarver/tix/internal/api"
	"github.com/tcarver/tix/internal/models"
	"github.com/tcarver/tix/internal/server"
	"github.com/tcarver/tix/internal/store"
)

// startServer runs tixd against an in-memory store and returns the tix
// client pointed at it, exercising the real wire format end to end.
func startServer(t *testing.T) (*api.Client, *store.Store) {
	t.Helper()

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(server.New(st).Handler())
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL, "", ""), st
}

func Test_Server_ServesSeededTickets(t *testing.T) {
	t.Parallel()

	client, st := startServer(t)
	require.NoError(t, st.Seed())

	tickets, err := client.ListTickets(context.Background())

	require.NoError(t, err)
	require.Len(t, tickets, 6)
	assert.Equal(t, "open", tickets[0].Status)
}

func Test_Server_ReturnsEmptyList_When_NoViewsSaved(t *testing.T) {
	t.Parallel()

	client, _ := startServer(t)

	views, err := client.ListViews(context.Background())

	require.NoError(t, err)
	assert.Empty(t, views)
}

func Test_Server_RoundTripsView_ThroughClient(t *testing.T) {
	t.Parallel()

	client, _ := startServer(t)

	created, err := client.CreateView(context.Background(), models.ViewRequest{
		Name:          "Open by priority",
		Filters:       models.ViewFilters{Status: []string{"open"}},
		GroupingField: "priority",
		SortDirection: "asc",
		IsDefault:     true,
	})
	require.NoError(t, err)

	got, err := client.GetView(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, got.Filters.Status)
	assert.Equal(t, "priority", got.GroupingField)
	assert.True(t, got.IsDefault)

	require.NoError(t, client.DeleteView(context.Background(), created.ID))

	_, err = client.GetView(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func Test_Server_RejectsView_When_NameMissing(t *testing.T) {
	t.Parallel()

	client, _ := startServer(t)

	_, err := client.CreateView(context.Background(), models.ViewRequest{Name: "  "})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func Test_Server_Returns404_When_DeletingUnknownView(t *testing.T) {
	t.Parallel()

	client, _ := startServer(t)

	err := client.DeleteView(context.Background(), 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
