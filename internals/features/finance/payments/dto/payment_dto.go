package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hocphi_backend/internals/features/finance/payments/model"
)

// SnapCheckoutDTO opens an online checkout for one student-month.
// YearMonth is optional; it defaults to the current calendar year's slot.
type SnapCheckoutDTO struct {
	MSHS      string `json:"mshs" validate:"required,max=20"`
	Month     int    `json:"month" validate:"required,min=1,max=12"`
	YearMonth string `json:"year_month" validate:"omitempty,len=7"`
}

type PaymentResponse struct {
	PaymentID          uuid.UUID       `json:"payment_id"`
	PaymentMSHS        string          `json:"payment_mshs"`
	PaymentMonth       int             `json:"payment_month"`
	PaymentAmount      decimal.Decimal `json:"payment_amount"`
	PaymentExternalID  string          `json:"payment_external_id"`
	PaymentSnapToken   string          `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL string          `json:"payment_redirect_url,omitempty"`
	PaymentStatus      string          `json:"payment_status"`
	PaymentSettledAt   *time.Time      `json:"payment_settled_at,omitempty"`
	PaymentCreatedAt   time.Time       `json:"payment_created_at"`
}

func ToPaymentResponse(m model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentMSHS:        m.PaymentMSHS,
		PaymentMonth:       m.PaymentMonth,
		PaymentAmount:      m.PaymentAmount,
		PaymentExternalID:  m.PaymentExternalID,
		PaymentSnapToken:   m.PaymentSnapToken,
		PaymentRedirectURL: m.PaymentRedirectURL,
		PaymentStatus:      string(m.PaymentStatus),
		PaymentSettledAt:   m.PaymentSettledAt,
		PaymentCreatedAt:   m.PaymentCreatedAt,
	}
}
