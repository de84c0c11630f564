package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"hocphi_backend/internals/features/finance/listings/model"
)

/* ==============================================
   RESPONSE DTO
============================================== */

// ListingResponse exposes the four accounting breakdowns as embedded JSON so
// clients get the itemized form straight from the stored columns.
type ListingResponse struct {
	ListingID         uuid.UUID       `json:"listing_id"`
	ListingMSHS       string          `json:"listing_mshs"`
	ListingYearMonth  string          `json:"listing_year_month"`
	ListingGrade      string          `json:"listing_grade"`
	ListingClass      string          `json:"listing_class"`
	ListingDudau      json.RawMessage `json:"listing_dudau"`
	ListingPhaithu    json.RawMessage `json:"listing_phaithu"`
	ListingDathu      json.RawMessage `json:"listing_dathu"`
	ListingDuno       json.RawMessage `json:"listing_duno"`
	ListingInvoiceIDs []string        `json:"listing_invoice_ids"`
	ListingUpdatedAt  time.Time       `json:"listing_updated_at"`
}

func ToListingResponse(m model.TuitionMonthlyFeeListing) ListingResponse {
	return ListingResponse{
		ListingID:         m.ListingID,
		ListingMSHS:       m.ListingMSHS,
		ListingYearMonth:  m.ListingYearMonth,
		ListingGrade:      m.ListingGrade,
		ListingClass:      m.ListingClass,
		ListingDudau:      json.RawMessage(m.ListingDudau),
		ListingPhaithu:    json.RawMessage(m.ListingPhaithu),
		ListingDathu:      json.RawMessage(m.ListingDathu),
		ListingDuno:       json.RawMessage(m.ListingDuno),
		ListingInvoiceIDs: m.ListingInvoiceIDs,
		ListingUpdatedAt:  m.ListingUpdatedAt,
	}
}
