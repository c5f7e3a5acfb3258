package core

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"walletsync/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrPurchaseNotFound error = errors.New("purchase not found")
var ErrInvalidSignature error = errors.New("invalid webhook signature")
var ErrUnknownProvider error = errors.New("unknown payment provider")

type PurchaseIntent struct {
	Provider              string
	FiatAmount            string
	FiatCurrency          string
	CryptoAmount          string
	CryptoCurrency        string
	PaymentMethod         string
	Fees                  string
	ProviderTransactionID *string
}

// RecordPurchase stores a fiat on-ramp attempt in the session wallet's
// partition. Purchases are never mirrored.
func (w *WalletSync) RecordPurchase(ctx context.Context, session Session, intent PurchaseIntent) (PurchaseRecord, error) {
	for _, amount := range []string{intent.FiatAmount, intent.CryptoAmount} {
		value, err := decimal.NewFromString(amount)
		if err != nil || value.IsNegative() {
			return PurchaseRecord{}, ErrInvalidAmount
		}
	}

	fees := intent.Fees
	if fees == "" {
		fees = "0"
	}

	purchase := repository.Purchase{
		OwningWallet:          session.Wallet,
		Provider:              intent.Provider,
		FiatAmount:            intent.FiatAmount,
		FiatCurrency:          intent.FiatCurrency,
		CryptoAmount:          intent.CryptoAmount,
		CryptoCurrency:        intent.CryptoCurrency,
		Status:                PurchasePending,
		PaymentMethod:         intent.PaymentMethod,
		Timestamp:             TimeNow().UnixMilli(),
		Fees:                  fees,
		ProviderTransactionID: intent.ProviderTransactionID,
	}

	saved, err := w.repo.SavePurchase(ctx, purchase)
	if err != nil {
		return PurchaseRecord{}, fmt.Errorf("save purchase: %w", err)
	}

	return repoPurchaseToRecord(saved), nil
}

func (w *WalletSync) Purchases(ctx context.Context, session Session) ([]PurchaseRecord, error) {
	purchases, err := w.repo.GetPurchases(ctx, session.Wallet)
	if err != nil {
		return nil, fmt.Errorf("get purchases: %w", err)
	}

	records := make([]PurchaseRecord, len(purchases))
	for i, p := range purchases {
		records[i] = repoPurchaseToRecord(p)
	}
	return records, nil
}

// UpdatePurchaseStatus moves a purchase along its lifecycle and, on
// completion, attaches the ledger transaction hash.
func (w *WalletSync) UpdatePurchaseStatus(ctx context.Context, session Session, id, status string, transactionHash *string) error {
	err := w.repo.UpdatePurchaseStatus(ctx, session.Wallet, id, status, transactionHash)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return ErrPurchaseNotFound
		}
		return fmt.Errorf("update purchase status: %w", err)
	}

	return nil
}

// HandleProviderWebhook verifies the provider's HMAC-SHA256 signature over the
// raw payload, normalizes the event and applies it to the matching purchase.
func (w *WalletSync) HandleProviderWebhook(ctx context.Context, provider string, payload []byte, signature, secret string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}

	event, err := parseWebhookEvent(provider, payload)
	if err != nil {
		return err
	}
	if event == nil {
		// event type the provider sends but we do not act on
		return nil
	}

	purchase, err := w.repo.GetPurchaseByProviderTx(ctx, event.ProviderTransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return ErrPurchaseNotFound
		}
		return fmt.Errorf("resolve purchase: %w", err)
	}

	err = w.repo.UpdatePurchaseStatus(ctx, purchase.OwningWallet, purchase.ID, event.Status, event.TransactionHash)
	if err != nil {
		return fmt.Errorf("apply webhook update: %w", err)
	}

	w.logs.Infow("purchase updated from provider webhook",
		"provider", provider, "purchase_id", purchase.ID, "status", event.Status)

	return nil
}

type moonpayWebhook struct {
	Type string `json:"type"`
	Data struct {
		ID                  string  `json:"id"`
		Status              string  `json:"status"`
		CryptoTransactionID *string `json:"cryptoTransactionId"`
	} `json:"data"`
}

type transakWebhook struct {
	EventID   string `json:"eventID"`
	Status    string `json:"status"`
	OrderData struct {
		TransactionHash *string `json:"transactionHash"`
	} `json:"orderData"`
}

type rampWebhook struct {
	Type     string `json:"type"`
	Purchase struct {
		ID string `json:"id"`
	} `json:"purchase"`
}

func parseWebhookEvent(provider string, payload []byte) (*WebhookEvent, error) {
	switch provider {
	case "moonpay":
		var hook moonpayWebhook
		if err := json.Unmarshal(payload, &hook); err != nil {
			return nil, fmt.Errorf("decode moonpay payload: %w", err)
		}
		if hook.Type != "transaction_updated" {
			return nil, nil
		}
		return &WebhookEvent{
			ProviderTransactionID: hook.Data.ID,
			Status:                normalizeProviderStatus(hook.Data.Status),
			TransactionHash:       hook.Data.CryptoTransactionID,
		}, nil

	case "transak":
		var hook transakWebhook
		if err := json.Unmarshal(payload, &hook); err != nil {
			return nil, fmt.Errorf("decode transak payload: %w", err)
		}
		return &WebhookEvent{
			ProviderTransactionID: hook.EventID,
			Status:                normalizeProviderStatus(hook.Status),
			TransactionHash:       hook.OrderData.TransactionHash,
		}, nil

	case "ramp":
		var hook rampWebhook
		if err := json.Unmarshal(payload, &hook); err != nil {
			return nil, fmt.Errorf("decode ramp payload: %w", err)
		}
		return &WebhookEvent{
			ProviderTransactionID: hook.Purchase.ID,
			Status:                normalizeProviderStatus(hook.Type),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

func normalizeProviderStatus(status string) string {
	switch strings.ToLower(status) {
	case "completed", "released", "order_completed", "finished":
		return PurchaseCompleted
	case "failed", "expired", "cancelled", "order_failed", "returned":
		return PurchaseFailed
	case "pending", "created", "awaiting_payment":
		return PurchasePending
	default:
		return PurchaseProcessing
	}
}

func repoPurchaseToRecord(purchase repository.Purchase) PurchaseRecord {
	return PurchaseRecord{
		ID:                    purchase.ID,
		Provider:              purchase.Provider,
		FiatAmount:            purchase.FiatAmount,
		FiatCurrency:          purchase.FiatCurrency,
		CryptoAmount:          purchase.CryptoAmount,
		CryptoCurrency:        purchase.CryptoCurrency,
		Status:                purchase.Status,
		PaymentMethod:         purchase.PaymentMethod,
		Timestamp:             purchase.Timestamp,
		TransactionHash:       purchase.TransactionHash,
		Fees:                  purchase.Fees,
		ProviderTransactionID: purchase.ProviderTransactionID,
		OwningWallet:          purchase.OwningWallet,
	}
}
