package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loketh/ledger/internal/api/middleware"
	"github.com/loketh/ledger/internal/api/shared/dto"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/ledger"
	"github.com/loketh/ledger/internal/registry"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateEvent opens a new event organized by the caller
	// POST /api/v1/events
	CreateEvent(c *gin.Context)

	// GetEvent retrieves a single event with its counters
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// TotalEvents returns the number of events, also the last assigned id
	// GET /api/v1/events/total
	TotalEvents(c *gin.Context)

	// BuyTicket buys one ticket of the event for the caller
	// POST /api/v1/events/:id/tickets
	BuyTicket(c *gin.Context)

	// WithdrawMoney pays the event jar out to the caller
	// POST /api/v1/events/:id/withdrawals
	WithdrawMoney(c *gin.Context)

	// GetAccountEvents lists the events organized by an account
	// GET /api/v1/accounts/:address/events
	GetAccountEvents(c *gin.Context)

	// GetAccountTickets lists the events an account holds tickets of
	// GET /api/v1/accounts/:address/tickets
	GetAccountTickets(c *gin.Context)

	// HasTicket reports whether an account holds a ticket of an event
	// GET /api/v1/accounts/:address/tickets/:id
	HasTicket(c *gin.Context)

	// OrganizerOwns reports whether an account organizes an event
	// GET /api/v1/accounts/:address/events/:id
	OrganizerOwns(c *gin.Context)

	// ListTokens lists the registered tokens
	// GET /api/v1/tokens
	ListTokens(c *gin.Context)

	// ResolveToken returns the address registered under a name
	// GET /api/v1/tokens/:name
	ResolveToken(c *gin.Context)

	// RegisterToken maps a currency name to a token, admin only
	// POST /api/v1/tokens
	RegisterToken(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger   ledger.Ledger
	registry registry.TokenRegistry
}

// NewHandler creates a new REST API handler
func NewHandler(l ledger.Ledger, reg registry.TokenRegistry) Handler {
	return &handler{
		ledger:   l,
		registry: reg,
	}
}

// parseEventID parses the :id path parameter. Range checks belong to the ledger.
func parseEventID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid event ID", err.Error())
		return 0, false
	}
	return id, true
}

// parseAddress parses the :address path parameter
func parseAddress(c *gin.Context) (domain.Account, bool) {
	address, err := domain.ParseAccount(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid address", c.Param("address"))
		return domain.ZeroAccount, false
	}
	return address, true
}

func caller(c *gin.Context) (domain.Account, bool) {
	account, ok := middleware.Caller(c)
	if !ok {
		respondUnauthorized(c, "Missing caller")
	}
	return account, ok
}

// CreateEvent opens a new event organized by the caller
func (h *handler) CreateEvent(c *gin.Context) {
	organizer, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input, err := req.ToInput(organizer)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	event, err := h.ledger.CreateEvent(c.Request.Context(), input)
	if err != nil {
		respondLedgerError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.MapEventToDTO(event))
}

// GetEvent retrieves a single event with its counters
func (h *handler) GetEvent(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	event, err := h.ledger.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondLedgerError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, dto.MapEventToDTO(event))
}

// TotalEvents returns the number of events
func (h *handler) TotalEvents(c *gin.Context) {
	total, err := h.ledger.TotalEvents(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err, "Failed to count events")
		return
	}

	c.JSON(http.StatusOK, dto.TotalEventsResponse{Total: total})
}

// BuyTicket buys one ticket of the event for the caller
func (h *handler) BuyTicket(c *gin.Context) {
	buyer, ok := caller(c)
	if !ok {
		return
	}

	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	var req dto.BuyTicketRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}

	input, err := req.ToInput(eventID, buyer)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	purchase, err := h.ledger.BuyTicket(c.Request.Context(), input)
	if err != nil {
		respondLedgerError(c, err, "Failed to buy ticket")
		return
	}

	c.JSON(http.StatusCreated, dto.MapPurchaseToDTO(purchase))
}

// WithdrawMoney pays the event jar out to the caller
func (h *handler) WithdrawMoney(c *gin.Context) {
	organizer, ok := caller(c)
	if !ok {
		return
	}

	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	withdrawal, err := h.ledger.WithdrawMoney(c.Request.Context(), eventID, organizer)
	if err != nil {
		respondLedgerError(c, err, "Failed to withdraw money")
		return
	}

	c.JSON(http.StatusOK, dto.MapWithdrawalToDTO(withdrawal))
}

// GetAccountEvents lists the events organized by an account
func (h *handler) GetAccountEvents(c *gin.Context) {
	address, ok := parseAddress(c)
	if !ok {
		return
	}

	ids, err := h.ledger.EventsOfOwner(c.Request.Context(), address)
	if err != nil {
		respondLedgerError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.AccountEventsResponse{
		Address:  address.Hex(),
		Count:    uint64(len(ids)),
		EventIDs: nonNil(ids),
	})
}

// GetAccountTickets lists the events an account holds tickets of
func (h *handler) GetAccountTickets(c *gin.Context) {
	address, ok := parseAddress(c)
	if !ok {
		return
	}

	ids, err := h.ledger.TicketsOfOwner(c.Request.Context(), address)
	if err != nil {
		respondLedgerError(c, err, "Failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, dto.AccountEventsResponse{
		Address:  address.Hex(),
		Count:    uint64(len(ids)),
		EventIDs: nonNil(ids),
	})
}

// HasTicket reports whether an account holds a ticket of an event
func (h *handler) HasTicket(c *gin.Context) {
	address, ok := parseAddress(c)
	if !ok {
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	has, err := h.ledger.HasTicket(c.Request.Context(), address, eventID)
	if err != nil {
		respondLedgerError(c, err, "Failed to check ticket")
		return
	}

	c.JSON(http.StatusOK, dto.MembershipResponse{Address: address.Hex(), EventID: eventID, Value: has})
}

// OrganizerOwns reports whether an account organizes an event
func (h *handler) OrganizerOwns(c *gin.Context) {
	address, ok := parseAddress(c)
	if !ok {
		return
	}
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	owns, err := h.ledger.OrganizerOwns(c.Request.Context(), address, eventID)
	if err != nil {
		respondLedgerError(c, err, "Failed to check organizer")
		return
	}

	c.JSON(http.StatusOK, dto.MembershipResponse{Address: address.Hex(), EventID: eventID, Value: owns})
}

// ListTokens lists the registered tokens
func (h *handler) ListTokens(c *gin.Context) {
	entries, err := h.registry.Tokens(c.Request.Context())
	if err != nil {
		respondLedgerError(c, err, "Failed to list tokens")
		return
	}

	resp := dto.TokenListResponse{
		Count:  uint64(len(entries)),
		Tokens: make([]dto.TokenResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Tokens = append(resp.Tokens, *dto.MapTokenToDTO(&entries[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// ResolveToken returns the address registered under a name
func (h *handler) ResolveToken(c *gin.Context) {
	name := c.Param("name")

	address, err := h.registry.ResolveToken(c.Request.Context(), name)
	if err != nil {
		respondLedgerError(c, err, "Failed to resolve token")
		return
	}

	c.JSON(http.StatusOK, dto.ResolveTokenResponse{
		Name:       name,
		Address:    address.Hex(),
		Registered: !domain.IsZeroAccount(address),
	})
}

// RegisterToken maps a currency name to a token
func (h *handler) RegisterToken(c *gin.Context) {
	admin, ok := caller(c)
	if !ok {
		return
	}

	var req dto.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondAPIError(c, err)
		return
	}

	address, err := domain.ParseAccount(req.Address)
	if err != nil {
		respondLedgerError(c, err, "Failed to register token")
		return
	}

	entry, err := h.registry.RegisterToken(c.Request.Context(), admin, req.Name, address)
	if err != nil {
		respondLedgerError(c, err, "Failed to register token")
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenToDTO(entry))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "loketh-ledger",
	})
}

func nonNil(ids []uint64) []uint64 {
	if ids == nil {
		return []uint64{}
	}
	return ids
}
