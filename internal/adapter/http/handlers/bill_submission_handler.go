package handlers

import (
	"errors"
	"net/http"

	"billed_service/internal/adapter/http/dto/request"
	"billed_service/internal/adapter/http/dto/response"
	"billed_service/internal/adapter/http/middleware"
	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase"
	"billed_service/pkg"

	"github.com/gin-gonic/gin"
)

// billsRoute is the listing view a successful submission navigates to.
const billsRoute = "/v1/bills"

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
	errMissingFile        = pkg.NewDomainErrorSimple("MISSING_FILE", "Missing attachment file", http.StatusBadRequest)
	errBadExtension       = pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Seuls les justificatifs jpg, jpeg et png sont acceptés", http.StatusUnprocessableEntity)
)

// BillSubmissionHandler is the UI adapter of the new-bill form: the file
// input's change event maps to UploadAttachment, the form submit to
// SubmitBill.

type BillSubmissionHandler struct {
	usecase usecase.IBillSubmissionUseCase
}

func NewBillSubmissionHandler(uc usecase.IBillSubmissionUseCase) *BillSubmissionHandler {
	return &BillSubmissionHandler{usecase: uc}
}

// UploadAttachment stores the selected receipt image and returns the
// fileUrl/fileName the client caches until submit. A refused extension gets
// a 422 with the blocking alert text; the client clears its file input and
// nothing was uploaded.
func (h *BillSubmissionHandler) UploadAttachment(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	defer src.Close()

	att, err := h.usecase.UploadAttachment(c.Request.Context(), fh.Filename, src)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAttachment) {
			c.JSON(errBadExtension.HTTPStatus, errBadExtension.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("ATTACHMENT_UPLOAD_FAILED", "Could not store the attachment", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.AttachmentResponse{FileURL: att.FileURL, FileName: att.FileName})
}

// SubmitBill creates the pending bill and, on success, points the client at
// the bill-listing route via Location. On a store failure no navigation
// happens: the body carries the store's message verbatim and the draft stays
// with the client for a retry.
func (h *BillSubmissionHandler) SubmitBill(c *gin.Context) {
	var payload request.NewBillRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	user := middleware.CurrentUser(c)
	bills, err := h.usecase.SubmitBill(c.Request.Context(), payload.ToForm(), user)
	if err != nil {
		if se, ok := entities.AsStoreError(err); ok {
			c.JSON(se.Status, response.BillsView{Bills: []response.BillRow{}, Error: se.Error()})
			return
		}
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Location", billsRoute)
	c.JSON(http.StatusCreated, response.BillsView{Bills: response.FromBills(bills)})
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseType), errors.Is(err, usecase.ErrInvalidBillName):
		return pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
