package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"walletrisk/internal/core"
	"walletrisk/internal/http/handler/middleware"
	"walletrisk/internal/http/payload"
	"walletrisk/internal/indexer"

	"go.uber.org/zap"
)

var (
	Authenticate          = "POST /risk/authenticate"
	GetScores             = "GET /risk/scores"
	GetWalletDetails      = "GET /risk/wallets/{wallet}/details"
	GetWalletTransactions = "GET /risk/wallets/{wallet}/transactions"
	Assess                = "POST /risk/assess"
)

const authHeader = "AUTH_TOKEN"

type RiskHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	risk             RiskService
}

func NewRiskHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, riskService RiskService) *RiskHandler {
	return &RiskHandler{
		logs:             logger,
		requestValidator: requestValidator,
		risk:             riskService,
	}
}

// Register adds every route to mux.
func (h *RiskHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetScores, h.HandleGetScores)
	mux.HandleFunc(GetWalletDetails, h.HandleGetWalletDetails)
	mux.HandleFunc(GetWalletTransactions, h.HandleGetWalletTransactions)
	mux.HandleFunc(Assess, h.HandleAssess)
}

func (h *RiskHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.risk.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Authenticated",
		Data:    map[string]string{"token": token},
	}, http.StatusOK, requestId)
}

func (h *RiskHandler) HandleGetScores(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetScores, requestId) {
		return
	}

	summary, scores, err := h.risk.LatestScores(r.Context())
	if err != nil {
		h.respondServiceError(w, "Could not retrieve scores", fmt.Errorf("get latest scores: %w", err), GetScores, requestId)
		return
	}

	h.logs.Infow("scores retrieved",
		"run_id", summary.RunID,
		"wallets", len(scores),
		"handler", GetScores,
		"request_id", requestId)

	h.respond(w, Response{
		Data: scoresData{
			RunID:            summary.RunID,
			CreatedAt:        summary.CreatedAt,
			TransactionCount: summary.TransactionCount,
			Scores:           scores,
		},
	}, http.StatusOK, requestId)
}

func (h *RiskHandler) HandleGetWalletDetails(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetWalletDetails, requestId) {
		return
	}

	wallet, ok := h.walletParam(w, r, GetWalletDetails, requestId)
	if !ok {
		return
	}

	events, err := h.risk.WalletDetails(r.Context(), wallet)
	if err != nil {
		h.respondServiceError(w, "Could not retrieve score details", fmt.Errorf("get wallet details: %w", err), GetWalletDetails, requestId)
		return
	}

	h.respond(w, Response{
		Data: walletData[core.ScoreEvent]{Wallet: wallet, Items: events},
	}, http.StatusOK, requestId)
}

func (h *RiskHandler) HandleGetWalletTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, GetWalletTransactions, requestId) {
		return
	}

	wallet, ok := h.walletParam(w, r, GetWalletTransactions, requestId)
	if !ok {
		return
	}

	transactions, err := h.risk.WalletTransactions(r.Context(), wallet)
	if err != nil {
		h.respondServiceError(w, "Could not retrieve transactions", fmt.Errorf("get wallet transactions: %w", err), GetWalletTransactions, requestId)
		return
	}

	h.respond(w, Response{
		Data: walletData[core.FlatTransaction]{Wallet: wallet, Items: transactions},
	}, http.StatusOK, requestId)
}

func (h *RiskHandler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	if !h.authorize(w, r, Assess, requestId) {
		return
	}

	var payload payload.AssessRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Assess,
			"request_id", requestId)
		return
	}

	h.logs.Infow("assessment requested",
		"wallets", len(payload.Wallets),
		"handler", Assess,
		"request_id", requestId)

	report, err := h.risk.Assess(r.Context(), payload.Wallets)
	if err != nil {
		h.respondServiceError(w, "Assessment failed", fmt.Errorf("assess wallets: %w", err), Assess, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Assessment completed",
		Data: scoresData{
			RunID:            report.RunID,
			CreatedAt:        report.CreatedAt,
			TransactionCount: len(report.Transactions),
			Scores:           report.Scores,
		},
	}, http.StatusOK, requestId)
}

func (h *RiskHandler) authorize(w http.ResponseWriter, r *http.Request, handler, requestId string) bool {
	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handler, "request_id", requestId)
		return false
	}

	subject, err := h.risk.Authorize(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid or expired token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("token rejected", "error", err, "handler", handler, "request_id", requestId)
		return false
	}

	h.logs.Debugw("request authorized", "subject", subject, "handler", handler, "request_id", requestId)
	return true
}

func (h *RiskHandler) walletParam(w http.ResponseWriter, r *http.Request, handler, requestId string) (string, bool) {
	req := payload.WalletRequest{Wallet: r.PathValue("wallet")}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid wallet parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid wallet parameter", "error", err, "handler", handler, "request_id", requestId)
		return "", false
	}
	return req.Wallet, true
}

func (h *RiskHandler) respondServiceError(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNoRuns):
		code = http.StatusNotFound
	case errors.Is(err, core.ErrNoWallets):
		code = http.StatusBadRequest
	case errors.Is(err, indexer.ErrAllWalletsFailed):
		code = http.StatusBadGateway
	}

	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *RiskHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
