package ticketing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"riskdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notices []string
}

func (n *recordingNotifier) Notify(level, message string) {
	n.notices = append(n.notices, level+": "+message)
}

func newTestGateway(t *testing.T, handler http.Handler) (*Gateway, *recordingNotifier) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	notifier := &recordingNotifier{}
	gateway := NewGateway(notifier, nil)
	gateway.ConfigureWithClient(NewClientWithBaseURL(server.URL, "test-key"))
	return gateway, notifier
}

func TestGateway_ListTickets(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tickets", func(w http.ResponseWriter, r *http.Request) {
		// Internal filter values arrive as remote numeric codes.
		assert.Equal(t, "2", r.URL.Query().Get("status"))
		assert.Equal(t, "4", r.URL.Query().Get("priority"))

		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "test-key", user)

		json.NewEncoder(w).Encode([]remoteTicket{
			{
				ID:              101,
				Subject:         "Chargeback spike on MID 4411",
				DescriptionText: "Merchant exceeded chargeback threshold",
				Status:          3,
				Priority:        4,
				GroupID:         7,
				Tags:            []string{"risk", "chargeback"},
				Requester:       remoteRequester{Name: "Priya Sharma", Email: "priya@example.com"},
			},
			{ID: 102, Subject: "KYC docs pending", Status: 42, Priority: 42},
		})
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]remoteGroup{{ID: 7, Name: "Risk Ops"}})
	})

	gateway, notifier := newTestGateway(t, mux)

	tickets := gateway.ListTickets(context.Background(), TicketFilter{
		Status:   models.TicketStatusOpen,
		Priority: models.TicketPriorityUrgent,
	})

	require.Len(t, tickets, 2)
	assert.Empty(t, notifier.notices)

	assert.Equal(t, int64(101), tickets[0].ID)
	assert.Equal(t, models.TicketStatusPending, tickets[0].Status)
	assert.Equal(t, models.TicketPriorityUrgent, tickets[0].Priority)
	assert.Equal(t, "Risk Ops", tickets[0].Group)
	assert.Equal(t, "priya@example.com", tickets[0].Requester.Email)

	// Unrecognized remote codes fall back to the defaults.
	assert.Equal(t, models.TicketStatusOpen, tickets[1].Status)
	assert.Equal(t, models.TicketPriorityMedium, tickets[1].Priority)
}

func TestGateway_ListTicketsTransportFailure(t *testing.T) {
	gateway, notifier := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))

	tickets := gateway.ListTickets(context.Background(), TicketFilter{})

	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)
	assert.NotEmpty(t, notifier.notices)
}

func TestGateway_Unconfigured(t *testing.T) {
	notifier := &recordingNotifier{}
	gateway := NewGateway(notifier, nil)

	assert.False(t, gateway.Configured())
	assert.Empty(t, gateway.ListTickets(context.Background(), TicketFilter{}))
	assert.False(t, gateway.UpdateStatus(context.Background(), 1, models.TicketStatusClosed))
	assert.False(t, gateway.AddNote(context.Background(), 1, "text", false))
	assert.Empty(t, gateway.ListGroups(context.Background()))
	assert.Empty(t, gateway.ListAgents(context.Background()))

	// Every short-circuited operation raised a notice.
	assert.Len(t, notifier.notices, 5)

	// Configure with empty values stays unconfigured.
	gateway.Configure("", "key")
	assert.False(t, gateway.Configured())
	assert.Len(t, notifier.notices, 5)

	gateway.Configure("acme", "key")
	assert.True(t, gateway.Configured())
	require.Len(t, notifier.notices, 6)
	assert.Equal(t, "info: Ticketing configured for acme", notifier.notices[5])
}

func TestGateway_UpdateStatus(t *testing.T) {
	var gotStatus int
	mux := http.NewServeMux()
	mux.HandleFunc("/tickets/55", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotStatus = body["status"]
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	gateway, notifier := newTestGateway(t, mux)

	ok := gateway.UpdateStatus(context.Background(), 55, models.TicketStatusResolved)
	assert.True(t, ok)
	assert.Equal(t, 4, gotStatus)
	assert.Empty(t, notifier.notices)

	// Unknown status never reaches the wire.
	ok = gateway.UpdateStatus(context.Background(), 55, "escalated")
	assert.False(t, ok)
	assert.NotEmpty(t, notifier.notices)
}

func TestGateway_AddNote(t *testing.T) {
	var calls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/tickets/9/notes", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "checked with the PG partner", body["body"])
		assert.Equal(t, true, body["private"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("{}"))
	})

	gateway, notifier := newTestGateway(t, mux)

	t.Run("empty note makes no network call", func(t *testing.T) {
		ok := gateway.AddNote(context.Background(), 9, "", true)
		assert.False(t, ok)
		assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
		assert.NotEmpty(t, notifier.notices)
	})

	t.Run("non-empty note is forwarded", func(t *testing.T) {
		ok := gateway.AddNote(context.Background(), 9, "checked with the PG partner", true)
		assert.True(t, ok)
		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})
}

func TestGateway_ListGroups(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]remoteGroup{
			{ID: 2, Name: "KYC Desk"},
			{ID: 7, Name: "Risk Ops"},
		})
	})

	gateway, notifier := newTestGateway(t, mux)

	groups := gateway.ListGroups(context.Background())
	require.Len(t, groups, 2)
	assert.Equal(t, models.TicketGroup{ID: 2, Name: "KYC Desk"}, groups[0])
	assert.Equal(t, models.TicketGroup{ID: 7, Name: "Risk Ops"}, groups[1])
	assert.Empty(t, notifier.notices)
}

func TestGateway_GetTicketAndAgents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tickets/3", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remoteTicket{ID: 3, Subject: "MID suspended", Status: 5, Priority: 1, GroupID: 2})
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]remoteGroup{{ID: 2, Name: "KYC Desk"}})
	})
	mux.HandleFunc("/agents", func(w http.ResponseWriter, r *http.Request) {
		agent := remoteAgent{ID: 12}
		agent.Contact.Name = "Rohan Iyer"
		agent.Contact.Email = "rohan@example.com"
		json.NewEncoder(w).Encode([]remoteAgent{agent})
	})

	gateway, _ := newTestGateway(t, mux)

	ticket, ok := gateway.GetTicket(context.Background(), 3)
	require.True(t, ok)
	assert.Equal(t, models.TicketStatusClosed, ticket.Status)
	assert.Equal(t, models.TicketPriorityLow, ticket.Priority)
	assert.Equal(t, "KYC Desk", ticket.Group)

	agents := gateway.ListAgents(context.Background())
	require.Len(t, agents, 1)
	assert.Equal(t, "rohan@example.com", agents[0].Email)
}
