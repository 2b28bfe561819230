package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// ContactRequest is a support message from the contact form.
type ContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a submission with a generated ticket id.
type ContactResponse struct {
	Message  string `json:"message"`
	TicketID string `json:"ticketId"`
}

// ContactHandler serves the contact-form endpoint. Submissions are
// acknowledged but not persisted; there is no ticketing backend.
type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit accepts a contact form message and returns a ticket id.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	log.Printf("contact form submission from %s (%s): %s", req.Name, req.Email, req.Subject)

	writeJSON(w, http.StatusOK, ContactResponse{
		Message:  "Contact form submitted successfully",
		TicketID: "TICKET-" + uuid.NewString(),
	})
}
