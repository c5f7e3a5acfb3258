package handler

import (
	"context"
	"net/http"
	"walletsync/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Unlock(ctx context.Context, msg core.AuthMessage) (string, error)
	SessionFromToken(token string) (core.Session, error)

	SendTransfer(ctx context.Context, session core.Session, intent core.TransferIntent) (core.TransactionRecord, error)
	SimulateReceive(ctx context.Context, session core.Session, intent core.TransferIntent) (core.TransactionRecord, error)
	PropagateStatus(ctx context.Context, wallet, hash, status string, confirmations *int) error
	TransactionHistory(ctx context.Context, session core.Session, limit, offset int) ([]core.TransactionRecord, error)
	TransactionsWithAddress(ctx context.Context, session core.Session, address string) ([]core.TransactionRecord, error)
	Summarize(ctx context.Context, wallet string) (core.AnalyticsSummary, error)

	AddContact(ctx context.Context, session core.Session, intent core.ContactIntent) (core.ContactRecord, error)
	Contacts(ctx context.Context, session core.Session) ([]core.ContactRecord, error)
	FrequentContacts(ctx context.Context, session core.Session, limit int) ([]core.ContactRecord, error)
	UpdateContact(ctx context.Context, session core.Session, id string, update core.ContactUpdate) error
	DeleteContact(ctx context.Context, session core.Session, id string) error

	RecordPurchase(ctx context.Context, session core.Session, intent core.PurchaseIntent) (core.PurchaseRecord, error)
	Purchases(ctx context.Context, session core.Session) ([]core.PurchaseRecord, error)
	UpdatePurchaseStatus(ctx context.Context, session core.Session, id, status string, transactionHash *string) error
	HandleProviderWebhook(ctx context.Context, provider string, payload []byte, signature, secret string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name WebhookSecrets . WebhookSecrets
type WebhookSecrets interface {
	WebhookSecret(provider string) (string, error)
}
