package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/domain"
	"github.com/RonaldoFons09/dashboard-avaliacao-fisica/internal/service"

	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for birth dates and assessment dates.
const dateLayout = "2006-01-02"

// ClientHandler holds the client service dependency.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- DTOs ---

// ClientRequest defines the expected JSON for creating or updating a client.
type ClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Gender    string `json:"gender" binding:"required"`
	BirthDate string `json:"birthDate" binding:"omitempty"` // YYYY-MM-DD
	Notes     string `json:"notes"`
}

// ClientResponse is the DTO for returning client details.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Gender    string    `json:"gender"`
	BirthDate string    `json:"birthDate,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapClientToResponse converts a domain.Client to ClientResponse DTO.
func MapClientToResponse(client *domain.Client) ClientResponse {
	if client == nil {
		return ClientResponse{}
	}
	resp := ClientResponse{
		ID:        client.ID.Hex(),
		Name:      client.Name,
		Email:     client.Email,
		Gender:    string(client.Gender),
		Notes:     client.Notes,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
	if !client.BirthDate.IsZero() {
		resp.BirthDate = client.BirthDate.Format(dateLayout)
	}
	return resp
}

// MapClientsToResponse converts a slice of domain.Client to response DTOs.
func MapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = MapClientToResponse(&client)
	}
	return responses
}

// parseBirthDate parses the optional YYYY-MM-DD birth date field.
func parseBirthDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

// --- Handler Methods ---

// CreateClient godoc
// @Summary Create a new client
// @Description Registers a new tracked client for the authenticated trainer.
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body ClientRequest true "Client details"
// @Success 201 {object} ClientResponse "Client created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid birthDate, expected YYYY-MM-DD.")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), trainerID, req.Name, req.Email, req.Gender, birthDate, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrClientValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create client.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapClientToResponse(client))
}

// GetClients godoc
// @Summary List clients
// @Description Retrieves all clients of the authenticated trainer, ordered by name.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ClientResponse "List of clients"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [get]
func (h *ClientHandler) GetClients(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}

	clients, err := h.clientService.GetClients(c.Request.Context(), trainerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}
	if clients == nil {
		c.JSON(http.StatusOK, []ClientResponse{})
		return
	}

	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// GetClient godoc
// @Summary Get a client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} ClientResponse "Client details"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// UpdateClient godoc
// @Summary Update a client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param client body ClientRequest true "Updated client details"
// @Success 200 {object} ClientResponse "Updated client"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid birthDate, expected YYYY-MM-DD.")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), trainerID, clientID, req.Name, req.Email, req.Gender, birthDate, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrClientValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			respondClientError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Removes a client and their whole measurement history.
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 204 "Client deleted"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	trainerID, ok := trainerIDFromContext(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), trainerID, clientID); err != nil {
		respondClientError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondClientError maps client service errors to HTTP status codes.
func respondClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrClientAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
