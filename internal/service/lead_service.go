package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"descentcheck/internal/model"
	"descentcheck/internal/repository"
)

var ErrLeadIncomplete = errors.New("lead requires a name and a phone or email")

// LeadService stores contact-form submissions and forwards them to the
// external CRM endpoint. The forward is best effort: the lead is already
// safe in the local collection when it happens.
type LeadService struct {
	leads       repository.LeadRepository
	crmEndpoint string
	httpClient  *http.Client
}

// NewLeadService creates a new lead service
func NewLeadService(leads repository.LeadRepository) *LeadService {
	return &LeadService{
		leads:       leads,
		crmEndpoint: os.Getenv("CRM_ENDPOINT"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit validates and stores the lead, then forwards it asynchronously.
func (s *LeadService) Submit(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	lead.FullName = strings.TrimSpace(lead.FullName)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.Email = strings.TrimSpace(lead.Email)
	if lead.FullName == "" || (lead.Phone == "" && lead.Email == "") {
		return nil, ErrLeadIncomplete
	}

	lead.ID = "l_" + uuid.New().String()[:8]
	lead.CreatedAt = time.Now()

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if s.crmEndpoint != "" {
		go s.forward(*lead)
	}

	return lead, nil
}

func (s *LeadService) forward(lead model.Lead) {
	body, err := json.Marshal(lead)
	if err != nil {
		log.Printf("failed to encode lead %s for CRM: %v", lead.ID, err)
		return
	}

	resp, err := s.httpClient.Post(s.crmEndpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("failed to forward lead %s to CRM: %v", lead.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("CRM rejected lead %s: status %d", lead.ID, resp.StatusCode)
	}
}
