package core

import (
	"context"
	"walletsync/internal/repository"
	tokenIssuer "walletsync/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetWallet(ctx context.Context, address string) (repository.Wallet, error)

	SaveTransaction(ctx context.Context, transaction repository.Transaction) error
	GetTransactionByHash(ctx context.Context, wallet, hash string) (repository.Transaction, error)
	GetTransactionsByWallet(ctx context.Context, wallet string, limit, offset int) ([]repository.Transaction, error)
	GetTransactionsWithAddress(ctx context.Context, wallet, address string) ([]repository.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, wallet, hash, status string, confirmations *int) (bool, error)

	GetContactByAddress(ctx context.Context, wallet, address string) (repository.Contact, error)
	SaveContact(ctx context.Context, contact repository.Contact) (repository.Contact, error)
	GetContacts(ctx context.Context, wallet string) ([]repository.Contact, error)
	GetFrequentContacts(ctx context.Context, wallet string, limit int) ([]repository.Contact, error)
	UpdateContact(ctx context.Context, wallet, id string, patch map[string]any) error
	DeleteContact(ctx context.Context, wallet, id string) error

	SavePurchase(ctx context.Context, purchase repository.Purchase) (repository.Purchase, error)
	GetPurchases(ctx context.Context, wallet string) ([]repository.Purchase, error)
	GetPurchaseByProviderTx(ctx context.Context, providerTxID string) (repository.Purchase, error)
	UpdatePurchaseStatus(ctx context.Context, wallet, id, status string, transactionHash *string) error

	SaveStatusUpdate(ctx context.Context, update repository.StatusUpdate) error
	CancelStatusUpdates(ctx context.Context, hash string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
