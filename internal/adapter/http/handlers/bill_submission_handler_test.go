package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billed_service/internal/adapter/http/handlers/mocks"
	"billed_service/internal/adapter/http/middleware"
	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testEmployee = entities.User{Type: entities.UserTypeEmployee, Email: "employee@test.tld"}

func submissionRouter(h *BillSubmissionHandler, user entities.User) *gin.Engine {
	r := gin.New()
	inject := func(c *gin.Context) { middleware.SetCurrentUser(c, user) }
	r.POST("/v1/bills", inject, h.SubmitBill)
	r.POST("/v1/bills/attachments", inject, h.UploadAttachment)
	return r
}

func multipartFile(t *testing.T, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write multipart body: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart body: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestBillSubmissionHandler_UploadAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills/attachments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("refused extension gets the blocking alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		uc.EXPECT().UploadAttachment(gomock.Any(), "testFile.txt", gomock.Any()).Return(usecase.Attachment{}, usecase.ErrInvalidAttachment)

		body, contentType := multipartFile(t, "testFile.txt", "test file")
		req := httptest.NewRequest(http.MethodPost, "/v1/bills/attachments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "jpg, jpeg et png") {
			t.Fatalf("expected alert text, got %s", w.Body.String())
		}
	})

	t.Run("accepted file is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		uc.EXPECT().UploadAttachment(gomock.Any(), "testFile.jpg", gomock.Any()).Return(
			usecase.Attachment{FileURL: "https://bucket.test/key.jpg", FileName: "testFile.jpg"}, nil)

		body, contentType := multipartFile(t, "testFile.jpg", "test file")
		req := httptest.NewRequest(http.MethodPost, "/v1/bills/attachments", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["fileUrl"] != "https://bucket.test/key.jpg" || res["fileName"] != "testFile.jpg" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestBillSubmissionHandler_SubmitBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"type":"Transports","name":"test","amount":"100","date":"2020-12-01","vat":"10","pct":"20","commentary":"ok","fileUrl":"thisURL","fileName":"thisName"}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success navigates to the bills view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		uc.EXPECT().SubmitBill(gomock.Any(), gomock.AssignableToTypeOf(usecase.BillForm{}), testEmployee).DoAndReturn(
			func(_ context.Context, form usecase.BillForm, _ entities.User) ([]entities.Bill, error) {
				if form.Name != "test" || form.Pct != "20" {
					t.Fatalf("unexpected form: %+v", form)
				}
				return []entities.Bill{{ID: "bill-1", Name: "test", Status: entities.BillStatusPending}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/v1/bills" {
			t.Fatalf("expected bills route location, got %q", loc)
		}
	})

	t.Run("store rejection shows the message and stays put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		uc.EXPECT().SubmitBill(gomock.Any(), gomock.Any(), testEmployee).Return(nil, entities.NewStoreError(404))

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Erreur 404") {
			t.Fatalf("expected verbatim store message, got %s", w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "" {
			t.Fatalf("expected no navigation, got %q", loc)
		}
	})

	t.Run("validation error is a 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillSubmissionUseCase(ctrl)
		r := submissionRouter(NewBillSubmissionHandler(uc), testEmployee)

		uc.EXPECT().SubmitBill(gomock.Any(), gomock.Any(), testEmployee).Return(nil, usecase.ErrInvalidBillName)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
