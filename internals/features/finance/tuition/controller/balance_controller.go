package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/tuition"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
	helper "hocphi_backend/internals/helpers"
)

type BalanceHandler struct {
	DB *gorm.DB
}

func NewBalanceHandler(db *gorm.DB) *BalanceHandler {
	return &BalanceHandler{DB: db}
}

// -----------------------------------------
// Probe (GET /balance/:mshs?month=&grade=&year_month=)
// Computes owed / paid / surplus for one student-month on the fly,
// without touching the stored listings.
// -----------------------------------------
func (h *BalanceHandler) Probe(c *fiber.Ctx) error {
	mshs := c.Params("mshs")
	month := helper.NormalizeMonth(c.Query("month"))
	if month == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be 1..12")
	}

	var st studentModel.Student
	if err := h.DB.First(&st, "student_mshs = ?", mshs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// grade override lets the office answer "what would this student owe in
	// grade 7" before promotions are committed
	grade := st.StudentGrade
	if v := c.Query("grade"); v != "" {
		grade = v
	}

	var groups []groupModel.TuitionGroup
	if err := h.DB.Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	txQuery := h.DB.Where("transaction_mshs = ?", mshs)
	if ym := c.Query("year_month"); ym != "" {
		if !helper.ValidYearMonth(ym) {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_month must be YYYY-MM")
		}
		txQuery = txQuery.Where("transaction_year_month = ?", ym)
	}
	var txs []txModel.Transaction
	if err := txQuery.Find(&txs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	bal := tuition.BalanceForMonth(groups, txs, grade, month)
	return helper.JsonOK(c, "", fiber.Map{
		"mshs":    mshs,
		"grade":   grade,
		"balance": bal,
	})
}

// -----------------------------------------
// Revenue (GET /revenue?month=&year_month=)
// School-wide revenue for one month, itemized per paid code.
// -----------------------------------------
func (h *BalanceHandler) Revenue(c *fiber.Ctx) error {
	month := helper.NormalizeMonth(c.Query("month"))
	if month == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be 1..12")
	}

	q := h.DB.Model(&txModel.Transaction{})
	if ym := c.Query("year_month"); ym != "" {
		if !helper.ValidYearMonth(ym) {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_month must be YYYY-MM")
		}
		q = q.Where("transaction_year_month = ?", ym)
	}
	var txs []txModel.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	byCode := tuition.RevenueByCode(txs, month)
	var reversed decimal.Decimal
	for _, t := range txs {
		if helper.NormalizeMonth(t.TransactionPaymentDate) == month && t.IsReversal() {
			reversed = reversed.Add(t.TransactionAmountPaid)
		}
	}
	return helper.JsonOK(c, "", fiber.Map{
		"month":    month,
		"revenue":  byCode,
		"reversed": reversed,
	})
}
