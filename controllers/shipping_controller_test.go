package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// --- Mock Service ---

type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) CreateRule(ctx context.Context, req *models.CreateShippingRuleRequest) (*models.ShippingRule, *services.ServiceError) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.ShippingRule), nil
}

func (m *MockShippingService) CheckPincode(ctx context.Context, pincode string) (*models.ShippingRule, *services.ServiceError) {
	args := m.Called(ctx, pincode)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.ShippingRule), nil
}

func (m *MockShippingService) DeactivateRule(ctx context.Context, id string) *services.ServiceError {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*services.ServiceError)
}

func (m *MockShippingService) ListRules(ctx context.Context, page, limit int) ([]models.ShippingRule, int64, *services.ServiceError) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Get(2).(*services.ServiceError)
	}
	return args.Get(0).([]models.ShippingRule), args.Get(1).(int64), nil
}

// --- Tests ---

func TestCheckPincodeController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Serviceable pincode - 200 OK", func(t *testing.T) {
		mockService := new(MockShippingService)
		controller := NewShippingController(mockService)

		mockService.On("CheckPincode", mock.Anything, "400050").Return(&models.ShippingRule{
			State:          "Maharashtra",
			DeliveryDays:   3,
			ShippingCharge: 50,
			CodAvailable:   true,
		}, nil).Once()

		router := gin.New()
		router.GET("/shipping/pincode/:pincode", controller.CheckPincode)

		req, _ := http.NewRequest(http.MethodGet, "/shipping/pincode/400050", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"pincode":"400050"`)
		assert.Contains(t, recorder.Body.String(), `"cod_available":true`)
		mockService.AssertExpectations(t)
	})

	t.Run("No coverage - 404 with code", func(t *testing.T) {
		mockService := new(MockShippingService)
		controller := NewShippingController(mockService)

		mockService.On("CheckPincode", mock.Anything, "999999").
			Return(nil, &services.ServiceError{
				StatusCode: 404,
				Code:       services.NoShippingCoverage,
				Message:    "Delivery is not available for this pincode",
			}).Once()

		router := gin.New()
		router.GET("/shipping/pincode/:pincode", controller.CheckPincode)

		req, _ := http.NewRequest(http.MethodGet, "/shipping/pincode/999999", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), services.NoShippingCoverage)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed pincode - 400 Bad Request", func(t *testing.T) {
		mockService := new(MockShippingService)
		controller := NewShippingController(mockService)

		mockService.On("CheckPincode", mock.Anything, "40005").
			Return(nil, &services.ServiceError{StatusCode: 400, Message: "Pincode must be a 6-digit numeric string"}).Once()

		router := gin.New()
		router.GET("/shipping/pincode/:pincode", controller.CheckPincode)

		req, _ := http.NewRequest(http.MethodGet, "/shipping/pincode/40005", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertExpectations(t)
	})
}
