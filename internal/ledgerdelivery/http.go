// Package ledgerdelivery manages delivery layer of ledger operations.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/internal/middleware"
	"github.com/bpnbank/bpn-bank/pkg/errorspkg"
	"github.com/bpnbank/bpn-bank/pkg/tokenpkg"
	"github.com/bpnbank/bpn-bank/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Mint(ctx context.Context, actor string, amount int64) (domain.Account, error)
	Transfer(ctx context.Context, from, to string, amount int64) (domain.TransferResult, error)
	PayMerchant(ctx context.Context, payer, merchant string, amount int64) (domain.TransferResult, error)
	Invest(ctx context.Context, actor, symbol string, quantity int64) (domain.TradeResult, error)
	Divest(ctx context.Context, actor, symbol string, quantity int64) (domain.TradeResult, error)
	ScheduleRecurringPayment(ctx context.Context, owner, destination string, amount int64, frequency domain.Frequency) (domain.RecurringPayment, error)
	Account(ctx context.Context, username string) (domain.Account, error)
	Overview(ctx context.Context) ([]domain.AccountWithoutPassword, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

type data struct {
	Account domain.AccountWithoutPassword `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// errorStatus maps ledger errors to http status codes. Unrecognized
// errors are hidden behind errorspkg.ErrInternal.
func errorStatus(err error) (int, error) {
	switch err {
	case domain.ErrUnknownAccount:
		return http.StatusNotFound, err
	case domain.ErrUnauthorized:
		return http.StatusForbidden, err
	case domain.ErrInvalidAmount, domain.ErrInvalidFrequency,
		domain.ErrNotAMerchant, domain.ErrUnknownInstrument:
		return http.StatusBadRequest, err
	case domain.ErrInsufficientFunds, domain.ErrInsufficientHoldings:
		return http.StatusUnprocessableEntity, err
	case domain.ErrPersistenceFailure:
		// The write is live in memory but not on disk. The caller
		// has to know durability was lost.
		return http.StatusInternalServerError, err
	}

	return http.StatusInternalServerError, errorspkg.ErrInternal
}

type mintRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// Mint handles http request to mint new funds into the founder account.
func (h *Handler) Mint(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req mintRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	account, err := h.service.Mint(ctx, authPayload.Username, req.Amount)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := response{
		Data: data{account.WithoutPassword()},
	}

	gctx.JSON(http.StatusOK, res)
}

type transferRequest struct {
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// Transfer handles http request to transfer funds to another account.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Transfer(ctx, authPayload.Username, req.To, req.Amount)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := response{
		Data: data{result.From.WithoutPassword()},
	}

	gctx.JSON(http.StatusOK, res)
}

type payMerchantRequest struct {
	Merchant string `json:"merchant" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// PayMerchant handles http request to pay a merchant account.
func (h *Handler) PayMerchant(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req payMerchantRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.PayMerchant(ctx, authPayload.Username, req.Merchant, req.Amount)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := response{
		Data: data{result.From.WithoutPassword()},
	}

	gctx.JSON(http.StatusOK, res)
}

type tradeRequest struct {
	Symbol   string `json:"symbol" binding:"required,instrument"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

type dataTrade struct {
	Account  domain.AccountWithoutPassword `json:"account"`
	Symbol   string                        `json:"symbol"`
	Quantity int64                         `json:"quantity"`
	Price    int64                         `json:"price"`
	Total    int64                         `json:"total"`
}
type responseTrade struct {
	Data dataTrade `json:"data,omitempty"`
}

func newDataTrade(trade domain.TradeResult) dataTrade {
	return dataTrade{
		Account:  trade.Account.WithoutPassword(),
		Symbol:   trade.Symbol,
		Quantity: trade.Quantity,
		Price:    trade.Price,
		Total:    trade.Total,
	}
}

// Invest handles http request to buy an instrument at the current price.
func (h *Handler) Invest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req tradeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	trade, err := h.service.Invest(ctx, authPayload.Username, req.Symbol, req.Quantity)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := responseTrade{
		Data: newDataTrade(trade),
	}

	gctx.JSON(http.StatusOK, res)
}

// Divest handles http request to sell an instrument at the current price.
func (h *Handler) Divest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req tradeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	trade, err := h.service.Divest(ctx, authPayload.Username, req.Symbol, req.Quantity)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := responseTrade{
		Data: newDataTrade(trade),
	}

	gctx.JSON(http.StatusOK, res)
}

type scheduleRequest struct {
	Destination string `json:"destination" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Frequency   string `json:"frequency" binding:"required,frequency"`
}

type dataRule struct {
	RecurringPayment domain.RecurringPayment `json:"recurring_payment"`
}
type responseRule struct {
	Data dataRule `json:"data,omitempty"`
}

// ScheduleRecurringPayment handles http request to create an automatic payment rule.
func (h *Handler) ScheduleRecurringPayment(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req scheduleRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	rule, err := h.service.ScheduleRecurringPayment(ctx,
		authPayload.Username, req.Destination, req.Amount, domain.Frequency(req.Frequency))
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := responseRule{
		Data: dataRule{rule},
	}

	gctx.JSON(http.StatusOK, res)
}

// Me handles http request to get the authenticated account.
func (h *Handler) Me(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	account, err := h.service.Account(ctx, authPayload.Username)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := response{
		Data: data{account.WithoutPassword()},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataAccounts struct {
	Accounts []domain.AccountWithoutPassword `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// Overview handles http request to get the founder-only view of all accounts.
func (h *Handler) Overview(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	actor, err := h.service.Account(ctx, authPayload.Username)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	if actor.Role != domain.RoleFounder {
		l.Warn().Str("username", actor.Username).Msg("non-founder requested accounts overview")
		gctx.JSON(http.StatusForbidden, web.Error(domain.ErrUnauthorized))

		return
	}

	accounts, err := h.service.Overview(ctx)
	if err != nil {
		status, err := errorStatus(err)
		gctx.JSON(status, web.Error(err))

		return
	}

	res := responseAccounts{
		Data: dataAccounts{accounts},
	}

	gctx.JSON(http.StatusOK, res)
}
