package routes

import (
	"billed_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills = "/bills"
)

func addBillRoutes(rg *gin.RouterGroup, submissionHandler *handlers.BillSubmissionHandler, billsHandler *handlers.BillsHandler) {
	bills := rg.Group(PathBills)
	{
		// Employee-facing: listing + new-bill path.
		bills.GET("", billsHandler.ListBills)
		bills.POST("", submissionHandler.SubmitBill)
		bills.POST("/attachments", submissionHandler.UploadAttachment)

		// Admin review actions.
		bills.PATCH("/:id/accept", billsHandler.AcceptBill)
		bills.PATCH("/:id/refuse", billsHandler.RefuseBill)
	}
}
