package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"walletsync/internal/core"
	"walletsync/internal/http/handler/middleware"
	"walletsync/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Unlock               = "POST /wallet/unlock"
	SendTransfer         = "POST /wallet/transfers"
	ReceiveTransfer      = "POST /wallet/transfers/receive"
	UpdateTransferStatus = "PUT /wallet/transfers/status"
	GetTransfers         = "GET /wallet/transfers"
	GetTransfersWith     = "GET /wallet/transfers/with/{address}"
	GetAnalytics         = "GET /wallet/analytics"
	CreateContact        = "POST /wallet/contacts"
	GetContacts          = "GET /wallet/contacts"
	GetFrequentContacts  = "GET /wallet/contacts/frequent"
	ModifyContact        = "PUT /wallet/contacts"
	RemoveContact        = "DELETE /wallet/contacts"
	CreatePurchase       = "POST /wallet/purchases"
	GetPurchases         = "GET /wallet/purchases"
	ModifyPurchase       = "PUT /wallet/purchases"
	ProviderWebhook      = "POST /wallet/webhooks/{provider}"
)

const defaultHistoryLimit = 50
const defaultFrequentLimit = 10

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
	secrets          WebhookSecrets
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService, secrets WebhookSecrets) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
		secrets:          secrets,
	}
}

func (h *WalletHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.UnlockRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not unlock wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", Unlock, "request_id", requestId)
		return
	}

	token, err := h.wallet.Unlock(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{Message: "Unlock failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrWalletNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("unlock failed", "error", err, "handler", Unlock, "request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSendTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, SendTransfer, requestId)
	if !ok {
		return
	}

	var req payload.SendTransferRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not record transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", SendTransfer, "request_id", requestId)
		return
	}

	record, err := h.wallet.SendTransfer(r.Context(), session, req.ToIntent())
	if err != nil {
		resp := Response{Message: "Could not record transfer"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidAddress), errors.Is(err, core.ErrInvalidAmount):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrPartialSync):
			resp.Message = "Transfer recorded, counterparty sync failed"
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to record transfer", "error", err, "handler", SendTransfer, "request_id", requestId)
		return
	}

	h.logs.Infow("transfer recorded",
		"hash", record.Hash, "wallet", session.Wallet, "handler", SendTransfer, "request_id", requestId)

	h.respond(w, map[string]core.TransactionRecord{"transaction": record}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleReceiveTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, ReceiveTransfer, requestId)
	if !ok {
		return
	}

	var req payload.ReceiveTransferRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not record transfer",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", ReceiveTransfer, "request_id", requestId)
		return
	}

	record, err := h.wallet.SimulateReceive(r.Context(), session, req.ToIntent())
	if err != nil {
		resp := Response{Message: "Could not record transfer"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidAddress), errors.Is(err, core.ErrInvalidAmount):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrPartialSync):
			resp.Message = "Transfer recorded, counterparty sync failed"
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to record transfer", "error", err, "handler", ReceiveTransfer, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.TransactionRecord{"transaction": record}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleUpdateTransferStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, UpdateTransferStatus, requestId)
	if !ok {
		return
	}

	var req payload.StatusUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update transfer status",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", UpdateTransferStatus, "request_id", requestId)
		return
	}

	err := h.wallet.PropagateStatus(r.Context(), session.Wallet, req.Hash, req.Status, req.Confirmations)
	if err != nil {
		resp := Response{Message: "Could not update transfer status"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrTransferNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update transfer status",
			"error", err, "handler", UpdateTransferStatus, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Status updated"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetTransfers, requestId)
	if !ok {
		return
	}

	limit := queryInt(r, "limit", defaultHistoryLimit)
	offset := queryInt(r, "offset", 0)

	transactions, err := h.wallet.TransactionHistory(r.Context(), session, limit, offset)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transfers",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get transfers", "error", err, "handler", GetTransfers, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.TransactionRecord{"transactions": transactions}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransfersWith(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetTransfersWith, requestId)
	if !ok {
		return
	}

	address := r.PathValue("address")

	transactions, err := h.wallet.TransactionsWithAddress(r.Context(), session, address)
	if err != nil {
		resp := Response{Message: "Could not retrieve transfers"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidAddress) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get transfers with address",
			"error", err, "handler", GetTransfersWith, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.TransactionRecord{"transactions": transactions}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetAnalytics, requestId)
	if !ok {
		return
	}

	summary, err := h.wallet.Summarize(r.Context(), session.Wallet)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not compute analytics",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to compute analytics", "error", err, "handler", GetAnalytics, "request_id", requestId)
		return
	}

	h.respond(w, summary, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreateContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, CreateContact, requestId)
	if !ok {
		return
	}

	var req payload.ContactRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not add contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", CreateContact, "request_id", requestId)
		return
	}

	contact, err := h.wallet.AddContact(r.Context(), session, req.ToIntent())
	if err != nil {
		resp := Response{Message: "Could not add contact"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrContactExists), errors.Is(err, core.ErrInvalidAddress):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to add contact", "error", err, "handler", CreateContact, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.ContactRecord{"contact": contact}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleGetContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetContacts, requestId)
	if !ok {
		return
	}

	contacts, err := h.wallet.Contacts(r.Context(), session)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve contacts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get contacts", "error", err, "handler", GetContacts, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.ContactRecord{"contacts": contacts}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetFrequentContacts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetFrequentContacts, requestId)
	if !ok {
		return
	}

	limit := queryInt(r, "limit", defaultFrequentLimit)

	contacts, err := h.wallet.FrequentContacts(r.Context(), session, limit)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve frequent contacts",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get frequent contacts",
			"error", err, "handler", GetFrequentContacts, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.ContactRecord{"contacts": contacts}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleUpdateContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, ModifyContact, requestId)
	if !ok {
		return
	}

	var req payload.ContactUpdateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", ModifyContact, "request_id", requestId)
		return
	}

	if err := h.wallet.UpdateContact(r.Context(), session, req.ID, req.ToUpdate()); err != nil {
		resp := Response{Message: "Could not update contact"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrContactNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update contact", "error", err, "handler", ModifyContact, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Contact updated"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleDeleteContact(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, RemoveContact, requestId)
	if !ok {
		return
	}

	var req payload.ContactDeleteRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not delete contact",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", RemoveContact, "request_id", requestId)
		return
	}

	if err := h.wallet.DeleteContact(r.Context(), session, req.ID); err != nil {
		h.respond(w, Response{
			Message: "Could not delete contact",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete contact", "error", err, "handler", RemoveContact, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Contact deleted"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreatePurchase(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, CreatePurchase, requestId)
	if !ok {
		return
	}

	var req payload.PurchaseRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not record purchase",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", CreatePurchase, "request_id", requestId)
		return
	}

	purchase, err := h.wallet.RecordPurchase(r.Context(), session, req.ToIntent())
	if err != nil {
		resp := Response{Message: "Could not record purchase"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidAmount) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to record purchase", "error", err, "handler", CreatePurchase, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.PurchaseRecord{"purchase": purchase}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleGetPurchases(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, GetPurchases, requestId)
	if !ok {
		return
	}

	purchases, err := h.wallet.Purchases(r.Context(), session)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve purchases",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get purchases", "error", err, "handler", GetPurchases, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.PurchaseRecord{"purchases": purchases}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleUpdatePurchase(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, ok := h.session(w, r, ModifyPurchase, requestId)
	if !ok {
		return
	}

	var req payload.PurchaseStatusRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update purchase",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err, "handler", ModifyPurchase, "request_id", requestId)
		return
	}

	if err := h.wallet.UpdatePurchaseStatus(r.Context(), session, req.ID, req.Status, req.TransactionHash); err != nil {
		resp := Response{Message: "Could not update purchase"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrPurchaseNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update purchase", "error", err, "handler", ModifyPurchase, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Purchase updated"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleProviderWebhook(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	provider := r.PathValue("provider")

	signature := r.Header.Get("x-signature")
	if signature == "" {
		signature = r.Header.Get("signature")
	}

	secret, err := h.secrets.WebhookSecret(provider)
	if err != nil {
		h.respond(w, Response{
			Message: "Webhook processing failed",
			Error:   "webhook secret not configured",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("webhook secret not configured",
			"error", err, "provider", provider, "handler", ProviderWebhook, "request_id", requestId)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respond(w, Response{
			Message: "Webhook processing failed",
			Error:   "could not read payload",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to read webhook payload",
			"error", err, "provider", provider, "handler", ProviderWebhook, "request_id", requestId)
		return
	}
	defer r.Body.Close()

	if err := h.wallet.HandleProviderWebhook(r.Context(), provider, body, signature, secret); err != nil {
		resp := Response{Message: "Webhook processing failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidSignature):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		case errors.Is(err, core.ErrUnknownProvider):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrPurchaseNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to process webhook",
			"error", err, "provider", provider, "handler", ProviderWebhook, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Webhook processed"}, http.StatusOK, requestId)
}

// session resolves the acting wallet from the AUTH_TOKEN header, writing a 401
// when the token is missing or invalid.
func (h *WalletHandler) session(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (core.Session, bool) {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handlerName, "request_id", requestId)
		return core.Session{}, false
	}

	session, err := h.wallet.SessionFromToken(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "session token is not valid",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("invalid session token", "error", err, "handler", handlerName, "request_id", requestId)
		return core.Session{}, false
	}

	return session, true
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
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
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
