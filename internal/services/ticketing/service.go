// Package ticketing bridges the dashboard to the remote ticketing system.
// Every operation is fail-soft: transport failures and missing configuration
// are logged, surfaced as notifications, and answered with a safe default
// (empty list, false) instead of an error bubbling up to the caller.
package ticketing

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strconv"
	"sync"

	"riskdesk/internal/models"
	"riskdesk/internal/repositories/cache"
	"riskdesk/internal/services/notification"
)

// ErrNotConfigured is raised when an operation runs before a domain and API
// key have been supplied.
var ErrNotConfigured = errors.New("ticketing gateway not configured")

// ErrEmptyNote rejects notes with no body before any network call is made.
var ErrEmptyNote = errors.New("note text must not be empty")

// TicketFilter narrows the remote ticket listing. Empty fields are omitted
// from the remote query.
type TicketFilter struct {
	Status   string
	Priority string
	GroupID  int64
	Tag      string
}

// Gateway exposes the ticketing operations to the handlers.
type Gateway struct {
	mu       sync.RWMutex
	client   *Client
	notifier notification.Notifier
	cache    *cache.CacheService // nil when Redis is not configured
}

// NewGateway creates an unconfigured gateway. Configure (or a non-empty
// domain/key pair from the environment) must be supplied before operations
// reach the network.
func NewGateway(notifier notification.Notifier, cacheService *cache.CacheService) *Gateway {
	return &Gateway{notifier: notifier, cache: cacheService}
}

// Configure installs the workspace domain and API key. Safe to call at any
// time; subsequent operations use the new client.
func (g *Gateway) Configure(domain, apiKey string) {
	g.mu.Lock()
	if domain == "" || apiKey == "" {
		g.client = nil
		g.mu.Unlock()
		return
	}
	g.client = NewClient(domain, apiKey)
	g.mu.Unlock()
	g.notify(notification.LevelInfo, "Ticketing configured for "+domain)
}

// ConfigureWithClient installs a prebuilt client. Used by tests.
func (g *Gateway) ConfigureWithClient(client *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.client = client
}

// Configured reports whether operations will attempt network calls.
func (g *Gateway) Configured() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.client != nil
}

func (g *Gateway) getClient() (*Client, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.client == nil {
		return nil, ErrNotConfigured
	}
	return g.client, nil
}

// ListTickets fetches tickets matching the filter, resolving group IDs to
// names. Failures yield an empty list.
func (g *Gateway) ListTickets(ctx context.Context, f TicketFilter) []models.Ticket {
	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return []models.Ticket{}
	}

	query := url.Values{}
	if code, ok := StatusToCode(f.Status); ok {
		query.Set("status", strconv.Itoa(code))
	}
	if code, ok := PriorityToCode(f.Priority); ok {
		query.Set("priority", strconv.Itoa(code))
	}
	if f.GroupID != 0 {
		query.Set("group_id", strconv.FormatInt(f.GroupID, 10))
	}
	if f.Tag != "" {
		query.Set("tag", f.Tag)
	}

	remote, err := client.listTickets(ctx, query)
	if err != nil {
		log.Printf("ticket list failed: %v", err)
		g.notify(notification.LevelError, "Failed to load tickets from the ticketing system")
		return []models.Ticket{}
	}

	groups := g.groupNames(ctx, client)

	tickets := make([]models.Ticket, 0, len(remote))
	for _, rt := range remote {
		tickets = append(tickets, toInternal(rt, groups))
	}
	return tickets
}

// GetTicket fetches a single ticket. ok is false on any failure.
func (g *Gateway) GetTicket(ctx context.Context, id int64) (*models.Ticket, bool) {
	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return nil, false
	}

	rt, err := client.getTicket(ctx, id)
	if err != nil {
		log.Printf("ticket fetch failed for %d: %v", id, err)
		g.notify(notification.LevelError, "Failed to load the ticket")
		return nil, false
	}

	ticket := toInternal(*rt, g.groupNames(ctx, client))
	return &ticket, true
}

// UpdateStatus forwards a status change to the remote system. Returns false
// on any failure, including unknown status values, without retrying.
func (g *Gateway) UpdateStatus(ctx context.Context, id int64, status string) bool {
	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return false
	}

	code, ok := StatusToCode(status)
	if !ok {
		g.notify(notification.LevelError, "Unknown ticket status: "+status)
		return false
	}

	if err := client.updateTicket(ctx, id, code); err != nil {
		log.Printf("ticket status update failed for %d: %v", id, err)
		g.notify(notification.LevelError, "Failed to update the ticket status")
		return false
	}
	return true
}

// AddNote forwards a note to the remote system. Empty note text is rejected
// locally; no network call is made.
func (g *Gateway) AddNote(ctx context.Context, id int64, text string, private bool) bool {
	if text == "" {
		log.Printf("ticket note rejected for %d: %v", id, ErrEmptyNote)
		g.notify(notification.LevelWarning, "Note text must not be empty")
		return false
	}

	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return false
	}

	if err := client.addNote(ctx, id, text, private); err != nil {
		log.Printf("ticket note failed for %d: %v", id, err)
		g.notify(notification.LevelError, "Failed to add the note")
		return false
	}
	return true
}

// ListGroups fetches the remote agent groups. Failures yield an empty list.
func (g *Gateway) ListGroups(ctx context.Context) []models.TicketGroup {
	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return []models.TicketGroup{}
	}

	remote, err := client.listGroups(ctx)
	if err != nil {
		log.Printf("group list failed: %v", err)
		g.notify(notification.LevelError, "Failed to load groups from the ticketing system")
		return []models.TicketGroup{}
	}

	groups := make([]models.TicketGroup, 0, len(remote))
	for _, rg := range remote {
		groups = append(groups, models.TicketGroup{ID: rg.ID, Name: rg.Name})
	}
	return groups
}

// ListAgents fetches the remote agent roster. Failures yield an empty list.
func (g *Gateway) ListAgents(ctx context.Context) []models.TicketAgent {
	client, err := g.getClient()
	if err != nil {
		g.notify(notification.LevelWarning, "Ticketing is not configured; set a domain and API key first")
		return []models.TicketAgent{}
	}

	remote, err := client.listAgents(ctx)
	if err != nil {
		log.Printf("agent list failed: %v", err)
		g.notify(notification.LevelError, "Failed to load agents from the ticketing system")
		return []models.TicketAgent{}
	}

	agents := make([]models.TicketAgent, 0, len(remote))
	for _, ra := range remote {
		agents = append(agents, models.TicketAgent{
			ID:    ra.ID,
			Name:  ra.Contact.Name,
			Email: ra.Contact.Email,
		})
	}
	return agents
}

// groupNames resolves group id -> name, keeping the resolved map warm in the
// cache. A failed lookup degrades to empty names, not a failed listing.
func (g *Gateway) groupNames(ctx context.Context, client *Client) map[int64]string {
	if g.cache != nil {
		if groups, found, err := g.cache.GetTicketGroups(ctx); err == nil && found {
			return groups
		}
	}

	remote, err := client.listGroups(ctx)
	if err != nil {
		log.Printf("group lookup failed: %v", err)
		return map[int64]string{}
	}

	groups := make(map[int64]string, len(remote))
	for _, rg := range remote {
		groups[rg.ID] = rg.Name
	}

	if g.cache != nil {
		if err := g.cache.CacheTicketGroups(ctx, groups); err != nil {
			log.Printf("failed to cache group names: %v", err)
		}
	}
	return groups
}

func toInternal(rt remoteTicket, groups map[int64]string) models.Ticket {
	return models.Ticket{
		ID:          rt.ID,
		Subject:     rt.Subject,
		Description: rt.DescriptionText,
		Status:      StatusFromCode(rt.Status),
		Priority:    PriorityFromCode(rt.Priority),
		Requester: models.TicketRequester{
			Name:  rt.Requester.Name,
			Email: rt.Requester.Email,
		},
		Tags:      rt.Tags,
		Group:     groups[rt.GroupID],
		CreatedAt: rt.CreatedAt,
		UpdatedAt: rt.UpdatedAt,
	}
}

func (g *Gateway) notify(level, message string) {
	if g.notifier != nil {
		g.notifier.Notify(level, message)
	}
}
