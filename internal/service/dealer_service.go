package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/priyanshuKshk/dealer-info-api/internal/models"
	"github.com/priyanshuKshk/dealer-info-api/internal/repository"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
)

// DealerStore is the persistence interface the dealer service works against.
type DealerStore interface {
	Create(ctx context.Context, d *models.Dealer) error
	GetByID(ctx context.Context, id string) (*models.Dealer, error)
	GetByCode(ctx context.Context, code string) (*models.Dealer, error)
	List(ctx context.Context, filter models.DealerFilter) ([]*models.Dealer, error)
	Update(ctx context.Context, d *models.Dealer) error
	Delete(ctx context.Context, id string) error
}

// DealerService handles dealer directory business logic.
type DealerService struct {
	dealers DealerStore
}

// NewDealerService constructs a DealerService.
func NewDealerService(dealers DealerStore) *DealerService {
	return &DealerService{dealers: dealers}
}

// CreateDealerRequest carries the fields of a new dealer record.
type CreateDealerRequest struct {
	DealershipName string `json:"dealershipName" binding:"required"`
	DealerCode     string `json:"dealerCode" binding:"required"`
	Address        string `json:"address"`
	ContactPerson  string `json:"contactPerson"`
	ContactNumber  string `json:"contactNumber" binding:"required"`
	Pincode        string `json:"pincode" binding:"required"`
	City           string `json:"city" binding:"required"`
	District       string `json:"district" binding:"required"`
	State          string `json:"state" binding:"required"`
	Country        string `json:"country"`
	Services       string `json:"services"`
	Email          string `json:"email" binding:"required"`
	Website        string `json:"website"`
	Status         string `json:"status"`
}

// UpdateDealerRequest carries a partial or full dealer update. Nil fields
// are left untouched.
type UpdateDealerRequest struct {
	DealershipName *string `json:"dealershipName"`
	DealerCode     *string `json:"dealerCode"`
	Address        *string `json:"address"`
	ContactPerson  *string `json:"contactPerson"`
	ContactNumber  *string `json:"contactNumber"`
	Pincode        *string `json:"pincode"`
	City           *string `json:"city"`
	District       *string `json:"district"`
	State          *string `json:"state"`
	Country        *string `json:"country"`
	Services       *string `json:"services"`
	Email          *string `json:"email"`
	Website        *string `json:"website"`
	Status         *string `json:"status"`
}

var (
	contactNumberRe = regexp.MustCompile(`^[0-9]{10,15}$`)
	pincodeRe       = regexp.MustCompile(`^\d{6}$`)
	emailRe         = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	schemeRe        = regexp.MustCompile(`(?i)^https?://`)
)

// NormalizeWebsite prefixes a bare website with https://. Values that
// already carry an http(s) scheme are returned unchanged.
func NormalizeWebsite(website string) string {
	website = strings.TrimSpace(website)
	if website == "" || schemeRe.MatchString(website) {
		return website
	}
	return "https://" + website
}

// Create validates the request, rejects a duplicate dealer code, and
// persists a new dealer record, returning it with its generated id and
// timestamps.
func (s *DealerService) Create(ctx context.Context, req *CreateDealerRequest) (*models.Dealer, error) {
	dealer := &models.Dealer{
		DealershipName: strings.TrimSpace(req.DealershipName),
		DealerCode:     strings.TrimSpace(req.DealerCode),
		Address:        strings.TrimSpace(req.Address),
		ContactPerson:  strings.TrimSpace(req.ContactPerson),
		ContactNumber:  strings.TrimSpace(req.ContactNumber),
		Pincode:        strings.TrimSpace(req.Pincode),
		City:           strings.TrimSpace(req.City),
		District:       strings.TrimSpace(req.District),
		State:          strings.TrimSpace(req.State),
		Country:        strings.TrimSpace(req.Country),
		Services:       strings.TrimSpace(req.Services),
		Email:          strings.TrimSpace(req.Email),
		Website:        NormalizeWebsite(req.Website),
		Status:         strings.TrimSpace(req.Status),
	}
	if dealer.Country == "" {
		dealer.Country = "India"
	}
	if dealer.Status == "" {
		dealer.Status = models.DealerStatusActive
	}

	if err := validateDealer(dealer); err != nil {
		return nil, err
	}

	// Pre-check the code like the panel expects; the unique constraint is
	// the authoritative guard against racing creates.
	if existing, err := s.dealers.GetByCode(ctx, dealer.DealerCode); err == nil && existing != nil {
		return nil, utils.ErrDealerExists
	}

	if err := s.dealers.Create(ctx, dealer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDealerExists
		}
		log.Error().Err(err).Str("dealer_code", dealer.DealerCode).Msg("Failed to create dealer")
		return nil, err
	}
	return dealer, nil
}

// List retrieves dealers matching the filter.
func (s *DealerService) List(ctx context.Context, filter models.DealerFilter) ([]*models.Dealer, error) {
	dealers, err := s.dealers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if dealers == nil {
		dealers = []*models.Dealer{}
	}
	return dealers, nil
}

// Update applies the given fields to an existing dealer and returns the
// updated record. Returns ErrDealerNotFound when the id does not resolve.
func (s *DealerService) Update(ctx context.Context, id string, req *UpdateDealerRequest) (*models.Dealer, error) {
	dealer, err := s.dealers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrDealerNotFound
		}
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyString(&dealer.DealershipName, req.DealershipName)
	applyString(&dealer.DealerCode, req.DealerCode)
	applyString(&dealer.Address, req.Address)
	applyString(&dealer.ContactPerson, req.ContactPerson)
	applyString(&dealer.ContactNumber, req.ContactNumber)
	applyString(&dealer.Pincode, req.Pincode)
	applyString(&dealer.City, req.City)
	applyString(&dealer.District, req.District)
	applyString(&dealer.State, req.State)
	applyString(&dealer.Country, req.Country)
	applyString(&dealer.Services, req.Services)
	applyString(&dealer.Email, req.Email)
	applyString(&dealer.Status, req.Status)
	if req.Website != nil {
		dealer.Website = NormalizeWebsite(*req.Website)
	}

	if err := validateDealer(dealer); err != nil {
		return nil, err
	}

	if err := s.dealers.Update(ctx, dealer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrDealerNotFound
		}
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDealerExists
		}
		return nil, err
	}
	return dealer, nil
}

// Delete removes a dealer permanently. Returns ErrDealerNotFound when the
// id does not resolve.
func (s *DealerService) Delete(ctx context.Context, id string) error {
	if err := s.dealers.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrDealerNotFound
		}
		return err
	}
	return nil
}

// validateDealer enforces the dealer field constraints. It never writes.
func validateDealer(d *models.Dealer) error {
	if d.DealershipName == "" {
		return utils.Invalid("dealershipName", "dealership name is required")
	}
	if d.DealerCode == "" {
		return utils.Invalid("dealerCode", "dealer code is required")
	}
	if d.State == "" || d.District == "" || d.City == "" {
		return utils.Invalid("state", "state, district and city are required")
	}
	if !contactNumberRe.MatchString(d.ContactNumber) {
		return utils.Invalid("contactNumber", "enter a valid contact number (10-15 digits)")
	}
	if !pincodeRe.MatchString(d.Pincode) {
		return utils.Invalid("pincode", "enter a 6-digit pincode")
	}
	if !emailRe.MatchString(d.Email) {
		return utils.Invalid("email", "invalid email")
	}
	if d.Status != models.DealerStatusActive && d.Status != models.DealerStatusInactive {
		return utils.Invalid("status", "status must be active or inactive")
	}
	// State/district/city consistency is enforced by the cascading form
	// selectors; the API accepts any non-empty triple.
	return nil
}
