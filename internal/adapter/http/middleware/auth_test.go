package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"billed_service/internal/domain/entities"
	"billed_service/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(users *mocks.MockIUserRepository) (*gin.Engine, *entities.User) {
		var seen entities.User
		r := gin.New()
		r.GET("/probe", RequireUser(users), func(c *gin.Context) {
			seen = CurrentUser(c)
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserRepository(ctrl)
		r, _ := newRouter(users)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserRepository(ctrl)
		r, _ := newRouter(users)

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@test.tld").Return(entities.User{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-Email", "ghost@test.tld")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserRepository(ctrl)
		r, _ := newRouter(users)

		users.EXPECT().GetByEmail(gomock.Any(), "employee@test.tld").Return(entities.User{}, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-Email", "employee@test.tld")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("resolved user reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserRepository(ctrl)
		r, seen := newRouter(users)

		employee := entities.User{Type: entities.UserTypeEmployee, Email: "employee@test.tld"}
		users.EXPECT().GetByEmail(gomock.Any(), "employee@test.tld").Return(employee, nil)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-Email", "employee@test.tld")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *seen != employee {
			t.Fatalf("expected injected user, got %+v", *seen)
		}
	})
}
