package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/model"
	"github.com/tradehub/tradehub-server/internal/testutil"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) AddUser(ctx context.Context, params form.User) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func newUserRouter(service *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUser(service, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.POST("/adduser", h.AddUser)
	return engine
}

func TestUserHandler_AddUser(t *testing.T) {
	validForm := url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"s3cret"},
		"passwordConfirm": {"s3cret"},
	}

	tests := []struct {
		name       string
		values     url.Values
		mockSetup  func(*MockUserService)
		wantStatus int
		wantFields []string
	}{
		{
			name:   "valid form registers the user",
			values: validForm,
			mockSetup: func(service *MockUserService) {
				service.On("AddUser", mock.Anything, mock.MatchedBy(func(params form.User) bool {
					return params.Name == "Ada" &&
						params.Email == "ada@example.com" &&
						params.Password == "s3cret" &&
						params.PasswordConfirm == "s3cret"
				})).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "malformed email is rejected before the service runs",
			values: url.Values{
				"name":            {"Ada"},
				"email":           {"not-an-email"},
				"password":        {"s3cret"},
				"passwordConfirm": {"s3cret"},
			},
			mockSetup:  func(service *MockUserService) {},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"email"},
		},
		{
			name:   "password mismatch responds exactly like success",
			values: validForm,
			mockSetup: func(service *MockUserService) {
				service.On("AddUser", mock.Anything, mock.Anything).
					Return(model.ErrPasswordMismatch)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "store failure maps to internal error",
			values: validForm,
			mockSetup: func(service *MockUserService) {
				service.On("AddUser", mock.Anything, mock.Anything).
					Return(errors.New("duplicate key value violates unique constraint"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockUserService{}
			tt.mockSetup(service)

			w := postForm(newUserRouter(service), "/adduser", tt.values)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantFields != nil {
				assert.ElementsMatch(t, tt.wantFields, failedFields(t, w))
				service.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
			}
			service.AssertExpectations(t)
		})
	}
}

func TestUserHandler_AddUser_MismatchBodyMatchesSuccess(t *testing.T) {
	// The mismatch response must be byte for byte identical to success so
	// the outcome stays unobservable from outside.
	success := &MockUserService{}
	success.On("AddUser", mock.Anything, mock.Anything).Return(nil)

	mismatch := &MockUserService{}
	mismatch.On("AddUser", mock.Anything, mock.Anything).Return(model.ErrPasswordMismatch)

	values := url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"s3cret"},
		"passwordConfirm": {"s3cret"},
	}

	okResp := postForm(newUserRouter(success), "/adduser", values)
	mismatchResp := postForm(newUserRouter(mismatch), "/adduser", values)

	assert.Equal(t, okResp.Code, mismatchResp.Code)
	assert.Equal(t, okResp.Body.String(), mismatchResp.Body.String())
}
