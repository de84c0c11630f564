package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hocphi_backend/internals/features/finance/listings/model"
	"hocphi_backend/internals/features/finance/tuition"
	groupModel "hocphi_backend/internals/features/finance/tuition_groups/model"
	txModel "hocphi_backend/internals/features/finance/transactions/model"
	studentModel "hocphi_backend/internals/features/school/students/model"
	helper "hocphi_backend/internals/helpers"
)

var ErrBadYearMonth = errors.New("year_month must be YYYY-MM")

// RebuildReport summarizes one rebuild run.
type RebuildReport struct {
	YearMonth string `json:"year_month"`
	Students  int    `json:"students"`
	Upserted  int    `json:"upserted"`
	Failed    int    `json:"failed"`
}

// BuildSnapshot computes one student-month listing row from already-loaded
// rows. opening is the prior month's closing total (zero when no prior
// listing exists). Pure except for the JSON encoding of the breakdowns.
func BuildSnapshot(
	st studentModel.Student,
	groups []groupModel.TuitionGroup,
	txs []txModel.Transaction,
	yearMonth string,
	opening decimal.Decimal,
	invoiceIDs []string,
) (*model.TuitionMonthlyFeeListing, error) {
	_, month, ok := helper.SplitYearMonth(yearMonth)
	if !ok {
		return nil, ErrBadYearMonth
	}

	owed := tuition.OwedForMonth(groups, st.StudentGrade, month)
	paid := tuition.RevenueByCode(txs, month)
	closing := tuition.CloseMonth(opening, owed.Total, paid.Total)

	// dudau and duno are single-line breakdowns: the carried balance has no
	// per-code itemization once it crosses a month boundary.
	dudau := tuition.Breakdown{Items: []tuition.FeeLine{}, Total: opening}
	duno := tuition.Breakdown{Items: []tuition.FeeLine{}, Total: closing}

	row := &model.TuitionMonthlyFeeListing{
		ListingMSHS:       st.StudentMSHS,
		ListingYearMonth:  yearMonth,
		ListingGrade:      st.StudentGrade,
		ListingClass:      st.StudentClass,
		ListingInvoiceIDs: invoiceIDs,
	}
	var err error
	if row.ListingDudau, err = marshalBreakdown("dudau", dudau); err != nil {
		return nil, err
	}
	if row.ListingPhaithu, err = marshalBreakdown("phaithu", owed); err != nil {
		return nil, err
	}
	if row.ListingDathu, err = marshalBreakdown("dathu", paid); err != nil {
		return nil, err
	}
	if row.ListingDuno, err = marshalBreakdown("duno", duno); err != nil {
		return nil, err
	}
	return row, nil
}

func marshalBreakdown(col string, b tuition.Breakdown) ([]byte, error) {
	raw, err := sonic.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", col, err)
	}
	return raw, nil
}

// ClosingTotal reads the closing balance back out of a stored duno column.
func ClosingTotal(raw []byte) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var b tuition.Breakdown
	if err := sonic.Unmarshal(raw, &b); err != nil {
		return decimal.Zero
	}
	return b.Total
}

// RebuildMonth recomputes students' listing rows for one month, the whole
// school or narrowed to one grade/class. Withdrawn students stay in the
// rebuild — their duno chain must remain correctable after a historical
// fix — only soft-deleted rows drop out. Opening balances come from the
// prior month's stored duno, so months must be rebuilt oldest-first after a
// historical correction. Per-student failures are logged and counted, not
// fatal.
func RebuildMonth(db *gorm.DB, yearMonth, grade, class string) (*RebuildReport, error) {
	if !helper.ValidYearMonth(yearMonth) {
		return nil, ErrBadYearMonth
	}

	var groups []groupModel.TuitionGroup
	if err := db.Find(&groups).Error; err != nil {
		return nil, err
	}

	sq := db.Model(&studentModel.Student{})
	if grade != "" {
		sq = sq.Where("student_grade = ?", grade)
	}
	if class != "" {
		sq = sq.Where("student_class = ?", class)
	}
	var students []studentModel.Student
	if err := sq.Find(&students).Error; err != nil {
		return nil, err
	}

	rep := &RebuildReport{YearMonth: yearMonth, Students: len(students)}
	prevYM, hasPrev := helper.PrevYearMonth(yearMonth)

	for _, st := range students {
		var txs []txModel.Transaction
		if err := db.
			Where("transaction_mshs = ? AND transaction_year_month = ?", st.StudentMSHS, yearMonth).
			Find(&txs).Error; err != nil {
			log.Printf("[ERROR] listing rebuild %s %s: %v", st.StudentMSHS, yearMonth, err)
			rep.Failed++
			continue
		}

		opening := decimal.Zero
		if hasPrev {
			var prev model.TuitionMonthlyFeeListing
			err := db.
				Where("listing_mshs = ? AND listing_year_month = ?", st.StudentMSHS, prevYM).
				First(&prev).Error
			switch {
			case err == nil:
				opening = ClosingTotal(prev.ListingDuno)
			case errors.Is(err, gorm.ErrRecordNotFound):
				// first tracked month for this student
			default:
				log.Printf("[ERROR] listing rebuild %s %s: %v", st.StudentMSHS, yearMonth, err)
				rep.Failed++
				continue
			}
		}

		row, err := BuildSnapshot(st, groups, txs, yearMonth, opening, invoiceIDsOf(txs))
		if err != nil {
			log.Printf("[ERROR] listing rebuild %s %s: %v", st.StudentMSHS, yearMonth, err)
			rep.Failed++
			continue
		}

		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "listing_mshs"}, {Name: "listing_year_month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"listing_grade", "listing_class",
				"listing_dudau", "listing_phaithu", "listing_dathu", "listing_duno",
				"listing_invoice_ids", "listing_updated_at",
			}),
		}).Create(row).Error
		if err != nil {
			log.Printf("[ERROR] listing rebuild %s %s: %v", st.StudentMSHS, yearMonth, err)
			rep.Failed++
			continue
		}
		rep.Upserted++
	}
	return rep, nil
}

// invoiceIDsOf collects the distinct invoice numbers behind a month's rows.
func invoiceIDsOf(txs []txModel.Transaction) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range txs {
		no := t.TransactionInvoiceNo
		if no == "" || seen[no] {
			continue
		}
		seen[no] = true
		out = append(out, no)
	}
	return out
}
