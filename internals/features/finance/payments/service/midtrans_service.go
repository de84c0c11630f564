package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/payments/model"
	txDTO "hocphi_backend/internals/features/finance/transactions/dto"
	txService "hocphi_backend/internals/features/finance/transactions/service"
	helper "hocphi_backend/internals/helpers"
)

var SnapClient snap.Client

// InitMidtrans wires the snap client with the gateway server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// NewOrderID builds the gateway order id for one student-month checkout.
func NewOrderID(mshs string, month int) string {
	return fmt.Sprintf("HP-%s-%d-%s", mshs, month, uuid.NewString()[:8])
}

// GenerateSnapToken opens a snap checkout for a pending payment.
func GenerateSnapToken(p model.Payment, payerName string) (token, redirectURL string, err error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentExternalID,
			GrossAmt: p.PaymentAmount.IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// HandleStatusNotification processes a gateway webhook. On settlement the
// outstanding amount is written through the same atomic recording path the
// cash desk uses, so online money and desk money land in one ledger.
func HandleStatusNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete gateway payload:", body)
		return errors.New("invalid payload")
	}

	var p model.Payment
	if err := db.Where("payment_external_id = ?", orderID).First(&p).Error; err != nil {
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}
	if p.PaymentStatus == model.PaymentStatusSettled {
		// gateway retries notifications; never double-book
		return nil
	}

	switch status {
	case "capture", "settlement":
		// Ledger write and status flip commit together. If the flip were a
		// separate write, a failure there would leave the row "pending" and
		// the gateway's retry would book the month twice.
		return db.Transaction(func(tx *gorm.DB) error {
			ym := p.PaymentYearMonth
			if ym == "" {
				// rows from before year_month was captured at checkout
				ym = helper.YearMonthOf(time.Now().Year(), p.PaymentMonth)
			}
			_, _, err := txService.RecordPayment(tx, txDTO.RecordPaymentDTO{
				MSHS:           p.PaymentMSHS,
				Month:          p.PaymentMonth,
				YearMonth:      ym,
				InvoiceDetails: fmt.Sprintf("online payment %s", orderID),
				Items: []txDTO.PaymentItemDTO{
					{PaidCode: "HP", AmountPaid: p.PaymentAmount},
				},
			})
			if err != nil {
				return err
			}
			now := time.Now()
			p.PaymentStatus = model.PaymentStatusSettled
			p.PaymentSettledAt = &now
			return tx.Save(&p).Error
		})
	case "expire", "cancel", "deny":
		p.PaymentStatus = model.PaymentStatusFailed
	default:
		log.Println("[INFO] unhandled gateway status:", status)
		return nil
	}

	return db.Save(&p).Error
}

// CheckoutYearMonth resolves the ledger partition a checkout pays into: the
// caller's explicit choice, or the current calendar year's slot for the
// month. Without the scoping, a month paid in a prior school year would
// suppress the same month's outstanding amount this year.
func CheckoutYearMonth(explicit string, month int, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	return helper.YearMonthOf(now.Year(), month)
}
