package offer

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/QuangTung97/promo-offer/model"
	"github.com/QuangTung97/promo-offer/pkg/eligibility"
	"github.com/QuangTung97/promo-offer/pkg/otellib"
	"github.com/QuangTung97/promo-offer/service/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

// Server exposes IService as JSON over HTTP
type Server struct {
	service IService
	retry   RetryConfig
}

// NewServer ...
func NewServer(service IService, retry RetryConfig) *Server {
	return &Server{
		service: service,
		retry:   retry,
	}
}

// Register adds the offer routes to the router
func (s *Server) Register(r chi.Router) {
	r.Route("/v1/offers", func(r chi.Router) {
		r.Post("/", s.createOffer)
		r.Post("/preview", s.preview)

		r.Get("/{id}", s.getOffer)
		r.Put("/{id}", s.updateOffer)
		r.Post("/{id}/activate", s.activateOffer)
		r.Post("/{id}/deactivate", s.deactivateOffer)
		r.Post("/{id}/redeem", s.redeem)
		r.Get("/{id}/usage", s.getUsage)
	})
}

type offerRequest struct {
	Code         string             `json:"code"`
	Kind         model.OfferKind    `json:"kind"`
	DiscountType model.DiscountType `json:"discountType"`

	DiscountValue  decimal.Decimal     `json:"discountValue"`
	MaxDiscountCap decimal.NullDecimal `json:"maxDiscountCap"`
	MinOrderValue  decimal.NullDecimal `json:"minOrderValue"`

	ValidFrom time.Time `json:"validFrom"`
	ValidTo   time.Time `json:"validTo"`

	GlobalQuota      *int64 `json:"globalQuota"`
	PerCustomerQuota *int64 `json:"perCustomerQuota"`

	Title       string `json:"title"`
	Description string `json:"description"`

	Active bool `json:"active"`
}

func toNullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Valid: true, Int64: *n}
}

func (req offerRequest) toInput() OfferInput {
	return OfferInput{
		Code:         req.Code,
		Kind:         req.Kind,
		DiscountType: req.DiscountType,

		DiscountValue:  req.DiscountValue,
		MaxDiscountCap: req.MaxDiscountCap,
		MinOrderValue:  req.MinOrderValue,

		ValidFrom: req.ValidFrom,
		ValidTo:   req.ValidTo,

		GlobalQuota:      toNullInt64(req.GlobalQuota),
		PerCustomerQuota: toNullInt64(req.PerCustomerQuota),

		Title:       req.Title,
		Description: req.Description,
	}
}

type previewRequest struct {
	Offer       string          `json:"offer"`
	Date        *time.Time      `json:"date"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
	CustomerID  string          `json:"customerId"`
}

type previewResponse struct {
	OfferID        int64           `json:"offerId"`
	Eligible       bool            `json:"eligible"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Reasons        []string        `json:"reasons"`
}

type redeemRequest struct {
	CustomerID  string          `json:"customerId"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

type redeemResponse struct {
	UsageID        int64           `json:"usageId"`
	OfferID        int64           `json:"offerId"`
	CustomerID     string          `json:"customerId"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
	UsedAt         time.Time       `json:"usedAt"`
}

type usageResponse struct {
	GlobalUsed   int64 `json:"globalUsed"`
	CustomerUsed int64 `json:"customerUsed"`
}

type errorResponse struct {
	Error    string   `json:"error"`
	Reasons  []string `json:"reasons,omitempty"`
	RaceLost bool     `json:"raceLost,omitempty"`
}

func reasonStrings(reasons []eligibility.Reason) []string {
	result := make([]string, 0, len(reasons))
	for _, r := range reasons {
		result = append(result, r.String())
	}
	return result
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var offerErr *eligibility.Error
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidOffer):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, ErrOfferNotFound), errors.Is(err, eligibility.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrOfferNotFound.Error()})

	case errors.As(err, &offerErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:    "offer not applicable",
			Reasons:  reasonStrings(offerErr.Reasons),
			RaceLost: offerErr.RaceLost,
		})

	case ledger.IsTransient(err):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

	default:
		otellib.Extract(r.Context()).Error("offer http request", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrOfferNotFound
	}
	return id, nil
}

func (s *Server) createOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	offer, err := s.service.CreateOffer(r.Context(), CreateOfferInput{
		OfferInput: req.toInput(),
		Active:     req.Active,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (s *Server) updateOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req offerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	offer, err := s.service.UpdateOffer(r.Context(), id, req.toInput())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (s *Server) getOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	nullOffer, err := s.service.GetOffer(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !nullOffer.Valid {
		s.writeError(w, r, ErrOfferNotFound)
		return
	}
	writeJSON(w, http.StatusOK, nullOffer.Offer)
}

func (s *Server) changeStatus(w http.ResponseWriter, r *http.Request, fn func(id int64) error) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := fn(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activateOffer(w http.ResponseWriter, r *http.Request) {
	s.changeStatus(w, r, func(id int64) error {
		return s.service.ActivateOffer(r.Context(), id)
	})
}

func (s *Server) deactivateOffer(w http.ResponseWriter, r *http.Request) {
	s.changeStatus(w, r, func(id int64) error {
		return s.service.DeactivateOffer(r.Context(), id)
	})
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	input := PreviewInput{
		OfferCodeOrID: req.Offer,
		OrderAmount:   req.OrderAmount,
		CustomerID:    req.CustomerID,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := s.service.PreviewDiscount(r.Context(), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{
		OfferID:        output.OfferID,
		Eligible:       output.Eligible,
		DiscountAmount: output.DiscountAmount,
		Reasons:        reasonStrings(output.Reasons),
	})
}

func (s *Server) redeem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req redeemRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	output, err := RedeemWithRetry(r.Context(), s.service, RedeemInput{
		OfferID:     id,
		CustomerID:  req.CustomerID,
		OrderAmount: req.OrderAmount,
	}, s.retry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, redeemResponse{
		UsageID:        output.Record.ID,
		OfferID:        output.Record.OfferID,
		CustomerID:     output.Record.CustomerID,
		DiscountAmount: output.Record.DiscountAmount,
		FinalAmount:    output.FinalAmount,
		UsedAt:         output.Record.UsedAt,
	})
}

func (s *Server) getUsage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	usage, err := s.service.GetUsage(r.Context(), id, r.URL.Query().Get("customerId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{
		GlobalUsed:   usage.GlobalUsed,
		CustomerUsed: usage.CustomerUsed,
	})
}
