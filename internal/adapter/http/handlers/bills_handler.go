package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"billed_service/internal/adapter/http/dto/request"
	"billed_service/internal/adapter/http/dto/response"
	"billed_service/internal/adapter/http/middleware"
	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase"
	"billed_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// BillsHandler serves the bills view (employee listing, admin dashboard) and
// the admin accept/refuse actions.

type BillsHandler struct {
	listing usecase.IBillListingUseCase
	review  usecase.IBillReviewUseCase
}

func NewBillsHandler(listing usecase.IBillListingUseCase, review usecase.IBillReviewUseCase) *BillsHandler {
	return &BillsHandler{listing: listing, review: review}
}

// ListBills renders the ordered rows. When the fetch fails the view shows
// the store's message verbatim and zero rows, instead of breaking.
func (h *BillsHandler) ListBills(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bills, err := h.listing.Load(c.Request.Context(), user)
	if err != nil {
		status := http.StatusInternalServerError
		if se, ok := entities.AsStoreError(err); ok {
			status = se.Status
		}
		c.JSON(status, response.BillsView{Bills: []response.BillRow{}, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.BillsView{Bills: response.FromBills(bills)})
}

func (h *BillsHandler) AcceptBill(c *gin.Context) {
	h.reviewBill(c, h.review.Accept)
}

func (h *BillsHandler) RefuseBill(c *gin.Context) {
	h.reviewBill(c, h.review.Refuse)
}

func (h *BillsHandler) reviewBill(
	c *gin.Context,
	action func(ctx context.Context, user entities.User, billID string, commentAdmin string) (entities.Bill, error),
) {
	// The annotation body is optional.
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	user := middleware.CurrentUser(c)
	bill, err := action(c.Request.Context(), user, c.Param("id"), payload.ResolveCommentAdmin())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func mapReviewError(err error) *pkg.AppError {
	if se, ok := entities.AsStoreError(err); ok {
		return pkg.NewDomainErrorSimple("STORE_ERROR", se.Error(), se.Status)
	}
	switch {
	case errors.Is(err, usecase.ErrReviewForbidden):
		return pkg.NewDomainErrorSimple("REVIEW_FORBIDDEN", "Only admins may review bills", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidBillID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
