package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"
)

type stubBookingService struct {
	booking *response.BookingResponse
	result  usecase.BookingResult
	err     error

	gotRoomID    int
	gotUserID    int
	gotBookingID int
}

func (s *stubBookingService) GetBooking(_ context.Context, userID int) (*response.BookingResponse, error) {
	s.gotUserID = userID
	return s.booking, s.err
}

func (s *stubBookingService) CreateBooking(_ context.Context, roomID, userID int) (usecase.BookingResult, error) {
	s.gotRoomID, s.gotUserID = roomID, userID
	return s.result, s.err
}

func (s *stubBookingService) UpdateBooking(_ context.Context, roomID, userID, bookingID int) (usecase.BookingResult, error) {
	s.gotRoomID, s.gotUserID, s.gotBookingID = roomID, userID, bookingID
	return s.result, s.err
}

const testUserID = 7

func newTestRouter(t *testing.T, svc usecase.BookingService, authenticated bool) http.Handler {
	t.Helper()
	h := NewBookingHandler(svc, zaptest.NewLogger(t))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authenticated {
				r = r.WithContext(utils.SetUserContext(r.Context(), testUserID))
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/booking", h.GetBooking)
	r.Post("/booking", h.CreateBooking)
	r.Put("/booking/{bookingId}", h.UpdateBooking)
	return r
}

func notFound() error {
	return fmt.Errorf("room 3: %w", usecase.ErrNotFound)
}

func TestBookingHandler_GetBooking(t *testing.T) {
	t.Parallel()

	room := &entity.Room{Base: entity.Base{ID: 3}, Name: "101", Capacity: 2, HotelID: 9}

	tests := []struct {
		name           string
		authenticated  bool
		booking        *response.BookingResponse
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			authenticated:  true,
			booking:        &response.BookingResponse{ID: 12, Room: room},
			expectedStatus: http.StatusOK,
			expectedSubstr: `"Room":{"id":3`,
		},
		{
			name:           "not found",
			authenticated:  true,
			serviceErr:     notFound(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "internal error",
			authenticated:  true,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unauthenticated",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubBookingService{booking: tt.booking, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodGet, "/booking", nil)
			rec := httptest.NewRecorder()

			newTestRouter(t, svc, tt.authenticated).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
			if tt.authenticated && svc.gotUserID != testUserID {
				t.Fatalf("expected user %d, got %d", testUserID, svc.gotUserID)
			}
		})
	}
}

func TestBookingHandler_GetBooking_Body(t *testing.T) {
	t.Parallel()

	room := &entity.Room{Base: entity.Base{ID: 3}, Name: "101", Capacity: 2, HotelID: 9}
	svc := &stubBookingService{booking: &response.BookingResponse{ID: 12, Room: room}}
	rec := httptest.NewRecorder()

	newTestRouter(t, svc, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	var body struct {
		ID   int `json:"id"`
		Room struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			Capacity int    `json:"capacity"`
			HotelID  int    `json:"hotelId"`
		} `json:"Room"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != 12 || body.Room.ID != 3 || body.Room.Name != "101" || body.Room.Capacity != 2 || body.Room.HotelID != 9 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		result         usecase.BookingResult
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"roomId":3}`,
			result:         usecase.BookingResult{Kind: usecase.ResultCreated, BookingID: 55},
			expectedStatus: http.StatusOK,
			expectedSubstr: `{"bookingId":55}`,
		},
		{
			name:           "forbidden",
			body:           `{"roomId":3}`,
			result:         usecase.BookingResult{Kind: usecase.ResultForbidden, Reason: usecase.ReasonRoomFull},
			expectedStatus: http.StatusForbidden,
			expectedSubstr: string(usecase.ReasonRoomFull),
		},
		{
			name:           "not found",
			body:           `{"roomId":3}`,
			serviceErr:     notFound(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "internal error",
			body:           `{"roomId":3}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid json",
			body:           `{"roomId":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing room id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"roomId"`,
		},
		{
			name:           "non numeric room id",
			body:           `{"roomId":"3"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative room id",
			body:           `{"roomId":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"roomId"`,
		},
		{
			name:           "zero room id reaches service",
			body:           `{"roomId":0}`,
			serviceErr:     notFound(),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubBookingService{result: tt.result, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			newTestRouter(t, svc, true).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestBookingHandler_UpdateBooking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		body           string
		result         usecase.BookingResult
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			path:           "/booking/12",
			body:           `{"roomId":5}`,
			result:         usecase.BookingResult{Kind: usecase.ResultUpdated, BookingID: 12},
			expectedStatus: http.StatusOK,
			expectedSubstr: `{"bookingId":12}`,
		},
		{
			name:           "forbidden",
			path:           "/booking/12",
			body:           `{"roomId":5}`,
			result:         usecase.BookingResult{Kind: usecase.ResultForbidden, Reason: usecase.ReasonNoBooking},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "not found",
			path:           "/booking/12",
			body:           `{"roomId":5}`,
			serviceErr:     notFound(),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "internal error",
			path:           "/booking/12",
			body:           `{"roomId":5}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid booking id",
			path:           "/booking/abc",
			body:           `{"roomId":5}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing room id",
			path:           "/booking/12",
			body:           `{"room":5}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubBookingService{result: tt.result, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodPut, tt.path, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			newTestRouter(t, svc, true).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}

	t.Run("passes ids to service", func(t *testing.T) {
		t.Parallel()
		svc := &stubBookingService{result: usecase.BookingResult{Kind: usecase.ResultUpdated, BookingID: 12}}
		req := httptest.NewRequest(http.MethodPut, "/booking/12", bytes.NewBufferString(`{"roomId":5}`))

		newTestRouter(t, svc, true).ServeHTTP(httptest.NewRecorder(), req)

		if svc.gotRoomID != 5 || svc.gotUserID != testUserID || svc.gotBookingID != 12 {
			t.Fatalf("unexpected service args room=%d user=%d booking=%d", svc.gotRoomID, svc.gotUserID, svc.gotBookingID)
		}
	})
}

func TestBookingHandler_CreateBooking_RoomIDBeyondStorageRange(t *testing.T) {
	t.Parallel()

	svc := usecase.NewBookingService(&repository.Repository{}, utils.BookingConfig{}, zaptest.NewLogger(t))
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId":10000000000}`))
	rec := httptest.NewRecorder()

	newTestRouter(t, svc, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNotFound, rec.Code, rec.Body.String())
	}
}
