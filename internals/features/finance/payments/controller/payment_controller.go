package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/payments/dto"
	"hocphi_backend/internals/features/finance/payments/model"
	"hocphi_backend/internals/features/finance/payments/service"
	"hocphi_backend/internals/features/finance/tuition"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
	helper "hocphi_backend/internals/helpers"
)

type PaymentHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db, Validate: validator.New()}
}

// -----------------------------------------
// Snap checkout (POST /payments/snap)
// Amount is the student's outstanding balance for the month, computed
// on the fly, not client-supplied.
// -----------------------------------------
func (h *PaymentHandler) SnapCheckout(c *fiber.Ctx) error {
	var in dto.SnapCheckoutDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if in.YearMonth != "" && !helper.ValidYearMonth(in.YearMonth) {
		return helper.JsonError(c, fiber.StatusBadRequest, "year_month must be YYYY-MM")
	}
	ym := service.CheckoutYearMonth(in.YearMonth, in.Month, time.Now())

	var st studentModel.Student
	if err := h.DB.First(&st, "student_mshs = ?", in.MSHS).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var groups []groupModel.TuitionGroup
	if err := h.DB.Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// scope to one ledger partition; a month paid in a prior school year
	// must not count against this year's obligation
	var txs []txModel.Transaction
	if err := h.DB.
		Where("transaction_mshs = ? AND transaction_year_month = ?", in.MSHS, ym).
		Find(&txs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	bal := tuition.BalanceForMonth(groups, txs, st.StudentGrade, in.Month)
	outstanding := bal.Surplus.Neg()
	if !outstanding.IsPositive() {
		return helper.JsonError(c, fiber.StatusConflict, "nothing outstanding for this month")
	}

	p := model.Payment{
		PaymentMSHS:       in.MSHS,
		PaymentMonth:      in.Month,
		PaymentYearMonth:  ym,
		PaymentAmount:     outstanding,
		PaymentExternalID: service.NewOrderID(in.MSHS, in.Month),
		PaymentStatus:     model.PaymentStatusPending,
	}
	token, redirect, err := service.GenerateSnapToken(p, st.FullName())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	p.PaymentSnapToken = token
	p.PaymentRedirectURL = redirect

	if err := h.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "checkout opened", dto.ToPaymentResponse(p))
}

// -----------------------------------------
// Gateway webhook (POST /payments/notify) — public, gateway-facing.
// -----------------------------------------
func (h *PaymentHandler) Notify(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := service.HandleStatusNotification(h.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "notification processed", nil)
}

// -----------------------------------------
// List (GET /payments)
// -----------------------------------------
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Payment{})
	if v := c.Query("mshs"); v != "" {
		q = q.Where("payment_mshs = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "payment_created_at",
		"mshs":       "payment_mshs",
		"amount":     "payment_amount",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var list []model.Payment
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PaymentResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.ToPaymentResponse(m))
	}
	return helper.JsonList(c, "", resp, helper.BuildMeta(total, p))
}
