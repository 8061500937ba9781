package ledgerdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/internal/middleware"
	"github.com/bpnbank/bpn-bank/pkg/errorspkg"
	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
	"github.com/bpnbank/bpn-bank/pkg/randompkg"
	"github.com/bpnbank/bpn-bank/pkg/tokenpkg"
	"github.com/bpnbank/bpn-bank/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("instrument", ValidInstrument); err != nil {
			panic(err)
		}

		if err := v.RegisterValidation("frequency", ValidFrequency); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func randomAccount(username string, role domain.Role) domain.Account {
	return domain.Account{
		Username:       username,
		HashedPassword: randompkg.String(32),
		Role:           role,
		Balance:        randompkg.Amount(100, 1000),
		Holdings: map[string]int64{
			instrumentpkg.BTC: 0,
			instrumentpkg.ETH: 0,
			instrumentpkg.LTC: 0,
			instrumentpkg.CNC: 0,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func newTestServer(t *testing.T, ledgerService Service, tokenMaker tokenpkg.Maker) *gin.Engine {
	t.Helper()

	handler := NewHandler(ledgerService)

	server := gin.New()
	authRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	authRoutes.POST("/mint", handler.Mint)
	authRoutes.POST("/transfers", handler.Transfer)
	authRoutes.POST("/merchant-payments", handler.PayMerchant)
	authRoutes.POST("/investments", handler.Invest)
	authRoutes.POST("/divestments", handler.Divest)
	authRoutes.POST("/recurring-payments", handler.ScheduleRecurringPayment)
	authRoutes.GET("/me", handler.Me)
	authRoutes.GET("/admin/accounts", handler.Overview)

	return server
}

func TestMint(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username, domain.RoleFounder)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		Amount int64 `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Amount: 500},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Eq(username), gomock.Eq(int64(500))).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*accountData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				want := account.WithoutPassword()

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(want, got.Account, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: requestBody{Amount: 500},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:        "ZeroAmount",
			requestBody: requestBody{Amount: 0},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field is required",
		},
		{
			name:        "NegativeAmount",
			requestBody: requestBody{Amount: -5},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount field must be greater than 0",
		},
		{
			name:        "ErrUnauthorized",
			requestBody: requestBody{Amount: 500},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Eq(username), gomock.Eq(int64(500))).
					Times(1).
					Return(domain.Account{}, domain.ErrUnauthorized)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrUnauthorized.Error(),
		},
		{
			name:        "ErrPersistenceFailure",
			requestBody: requestBody{Amount: 500},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Eq(username), gomock.Eq(int64(500))).
					Times(1).
					Return(domain.Account{}, domain.ErrPersistenceFailure)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      domain.ErrPersistenceFailure.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: requestBody{Amount: 500},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Mint(gomock.Any(), gomock.Eq(username), gomock.Eq(int64(500))).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/mint", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &accountData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

// accountData mirrors the account envelope for response decoding in tests.
type accountData struct {
	Account domain.AccountWithoutPassword `json:"account"`
}

func TestTransfer(t *testing.T) {
	username := randompkg.Owner()
	username2 := randompkg.Owner()
	account := randomAccount(username, domain.RoleRegular)
	account2 := randomAccount(username2, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		To     string `json:"to"`
		Amount int64  `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{To: username2, Amount: 100},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(username), gomock.Eq(username2), gomock.Eq(int64(100))).
					Times(1).
					Return(domain.TransferResult{From: account, To: account2}, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*accountData)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				want := account.WithoutPassword()

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(want, got.Account, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "MissingDestination",
			requestBody: requestBody{Amount: 100},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "To field is required",
		},
		{
			name:        "ErrUnknownAccount",
			requestBody: requestBody{To: "nobody", Amount: 100},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(username), gomock.Eq("nobody"), gomock.Eq(int64(100))).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrUnknownAccount)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrUnknownAccount.Error(),
		},
		{
			name:        "ErrInsufficientFunds",
			requestBody: requestBody{To: username2, Amount: 100},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(username), gomock.Eq(username2), gomock.Eq(int64(100))).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &accountData{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestPayMerchant(t *testing.T) {
	username := randompkg.Owner()
	merchant := randompkg.Owner()
	account := randomAccount(username, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	type requestBody struct {
		Merchant string `json:"merchant"`
		Amount   int64  `json:"amount"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: requestBody{Merchant: merchant, Amount: 50},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					PayMerchant(gomock.Any(), gomock.Eq(username), gomock.Eq(merchant), gomock.Eq(int64(50))).
					Times(1).
					Return(domain.TransferResult{From: account}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "ErrNotAMerchant",
			requestBody: requestBody{Merchant: merchant, Amount: 50},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					PayMerchant(gomock.Any(), gomock.Eq(username), gomock.Eq(merchant), gomock.Eq(int64(50))).
					Times(1).
					Return(domain.TransferResult{}, domain.ErrNotAMerchant)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrNotAMerchant.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/merchant-payments", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}

func TestInvest(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	trade := domain.TradeResult{
		Account:  account,
		Symbol:   instrumentpkg.BTC,
		Quantity: 2,
		Price:    20000,
		Total:    40000,
	}

	type requestBody struct {
		Symbol   string `json:"symbol"`
		Quantity int64  `json:"quantity"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Symbol: instrumentpkg.BTC, Quantity: 2},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Invest(gomock.Any(), gomock.Eq(username), gomock.Eq(instrumentpkg.BTC), gomock.Eq(int64(2))).
					Times(1).
					Return(trade, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*dataTrade)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				want := newDataTrade(trade)

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(want, *got, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "UntrackedSymbol",
			requestBody: requestBody{Symbol: "DOGE", Quantity: 2},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Invest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Symbol field must be a tracked instrument symbol",
		},
		{
			name:        "ErrInsufficientFunds",
			requestBody: requestBody{Symbol: instrumentpkg.BTC, Quantity: 2},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Invest(gomock.Any(), gomock.Eq(username), gomock.Eq(instrumentpkg.BTC), gomock.Eq(int64(2))).
					Times(1).
					Return(domain.TradeResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &dataTrade{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestDivest(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	trade := domain.TradeResult{
		Account:  account,
		Symbol:   instrumentpkg.LTC,
		Quantity: 3,
		Price:    80,
		Total:    240,
	}

	testCases := []struct {
		name           string
		quantity       int64
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:     "OK",
			quantity: 3,
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Divest(gomock.Any(), gomock.Eq(username), gomock.Eq(instrumentpkg.LTC), gomock.Eq(int64(3))).
					Times(1).
					Return(trade, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:     "ErrInsufficientHoldings",
			quantity: 3,
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Divest(gomock.Any(), gomock.Eq(username), gomock.Eq(instrumentpkg.LTC), gomock.Eq(int64(3))).
					Times(1).
					Return(domain.TradeResult{}, domain.ErrInsufficientHoldings)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrInsufficientHoldings.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(map[string]any{
				"symbol":   instrumentpkg.LTC,
				"quantity": tc.quantity,
			})
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/divestments", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, username, duration); err != nil {
				t.Fatalf("middleware.AddAuthorization(%+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}
		})
	}
}

func TestScheduleRecurringPayment(t *testing.T) {
	username := randompkg.Owner()
	destination := randompkg.Owner()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	rule := domain.RecurringPayment{
		Destination:    destination,
		Amount:         25,
		Frequency:      domain.FrequencyWeekly,
		LastExecutedAt: time.Now().UTC().Truncate(time.Second),
	}

	type requestBody struct {
		Destination string `json:"destination"`
		Amount      int64  `json:"amount"`
		Frequency   string `json:"frequency"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Destination: destination, Amount: 25, Frequency: "weekly"},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					ScheduleRecurringPayment(gomock.Any(),
						gomock.Eq(username), gomock.Eq(destination),
						gomock.Eq(int64(25)), gomock.Eq(domain.FrequencyWeekly)).
					Times(1).
					Return(rule, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*dataRule)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareExecutedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(rule, got.RecurringPayment, compareExecutedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "InvalidFrequency",
			requestBody: requestBody{Destination: destination, Amount: 25, Frequency: "hourly"},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					ScheduleRecurringPayment(gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Frequency field must be one of daily, weekly or monthly",
		},
		{
			name:        "ErrUnknownAccount",
			requestBody: requestBody{Destination: destination, Amount: 25, Frequency: "daily"},
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					ScheduleRecurringPayment(gomock.Any(),
						gomock.Eq(username), gomock.Eq(destination),
						gomock.Eq(int64(25)), gomock.Eq(domain.FrequencyDaily)).
					Times(1).
					Return(domain.RecurringPayment{}, domain.ErrUnknownAccount)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrUnknownAccount.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/recurring-payments", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, username, duration); err != nil {
				t.Fatalf("middleware.AddAuthorization(%+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &dataRule{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestMe(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledgerService := NewMockService(ctrl)
	server := newTestServer(t, ledgerService, tokenMaker)

	ledgerService.EXPECT().
		Account(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(account, nil)

	req, err := http.NewRequest(http.MethodGet, "/me", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	if err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, username, time.Minute); err != nil {
		t.Fatalf("middleware.AddAuthorization(%+v) returned error: %v", req, err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{Data: &accountData{}}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	got := res.Data.(*accountData)

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(account.WithoutPassword(), got.Account, compareCreatedAt); diff != "" {
		t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
	}

	if bytes.Contains(recorder.Body.Bytes(), []byte(account.HashedPassword)) {
		t.Error("response body leaks hashed password")
	}
}

func TestOverview(t *testing.T) {
	founder := randompkg.Owner()
	regular := randompkg.Owner()
	founderAccount := randomAccount(founder, domain.RoleFounder)
	regularAccount := randomAccount(regular, domain.RoleRegular)
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	overview := []domain.AccountWithoutPassword{
		founderAccount.WithoutPassword(),
		regularAccount.WithoutPassword(),
	}

	testCases := []struct {
		name           string
		username       string
		buildStubs     func(ledgerService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:     "OK",
			username: founder,
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Account(gomock.Any(), gomock.Eq(founder)).
					Times(1).
					Return(founderAccount, nil)
				ledgerService.EXPECT().
					Overview(gomock.Any()).
					Times(1).
					Return(overview, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*dataAccounts)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(overview, got.Accounts, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:     "NonFounderForbidden",
			username: regular,
			buildStubs: func(ledgerService *MockService) {
				ledgerService.EXPECT().
					Account(gomock.Any(), gomock.Eq(regular)).
					Times(1).
					Return(regularAccount, nil)
				ledgerService.EXPECT().
					Overview(gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusForbidden,
			wantError:      domain.ErrUnauthorized.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ledgerService := NewMockService(ctrl)
			server := newTestServer(t, ledgerService, tokenMaker)

			tc.buildStubs(ledgerService)

			req, err := http.NewRequest(http.MethodGet, "/admin/accounts", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, tc.username, time.Minute); err != nil {
				t.Fatalf("middleware.AddAuthorization(%+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &dataAccounts{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
