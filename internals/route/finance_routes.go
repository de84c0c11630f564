package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportRoute "hocphi_backend/internals/features/finance/exports/route"
	invoiceRoute "hocphi_backend/internals/features/finance/invoices/route"
	listingRoute "hocphi_backend/internals/features/finance/listings/route"
	paymentRoute "hocphi_backend/internals/features/finance/payments/route"
	tuitionRoute "hocphi_backend/internals/features/finance/tuition/route"
	groupRoute "hocphi_backend/internals/features/finance/tuition_groups/route"
	txRoute "hocphi_backend/internals/features/finance/transactions/route"
)

func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	fin := r.Group("/finance")

	groupRoute.AdminTuitionGroupRoutes(fin, db)
	txRoute.AdminTransactionRoutes(fin, db)
	invoiceRoute.AdminInvoiceRoutes(fin, db)
	listingRoute.AdminListingRoutes(fin, db)
	tuitionRoute.AdminTuitionRoutes(fin, db)
	exportRoute.AdminExportRoutes(fin, db)
	paymentRoute.AdminPaymentRoutes(fin, db)
}
