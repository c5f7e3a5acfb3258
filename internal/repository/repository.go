package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"walletsync/internal/db"

	"github.com/google/uuid"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrContactNotFound error = errors.New("contact not found")
var ErrContactExists error = errors.New("contact already exists")
var ErrPurchaseNotFound error = errors.New("purchase not found")

type LedgerRepository struct {
	db      Storage
	timeNow func() int64
}

func NewLedgerRepository(db Storage, timeNow func() int64) *LedgerRepository {
	return &LedgerRepository{
		db:      db,
		timeNow: timeNow,
	}
}

func (r *LedgerRepository) MigrateAndSeed() error {

	err := r.db.MigrateTable(
		&Transaction{},
		&Contact{},
		&Purchase{},
		&Wallet{},
		&StatusUpdate{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	now := r.timeNow()
	wallets := []Wallet{
		{
			Address:      "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1",
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky", // bcrypt hash of "testpass"
			Currency:     "USD",
			CreatedAt:    now,
		},
		{
			Address:      "0xffcf8fdee72ac11b5c542428b35eef5769c409f0",
			PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
			Currency:     "USD",
			CreatedAt:    now,
		},
	}
	err = r.db.Seed(context.Background(), &wallets)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetWallet(ctx context.Context, address string) (Wallet, error) {
	var wallet Wallet

	err := r.db.GetOneBy(ctx, "address", strings.ToLower(address), &wallet)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, fmt.Errorf("get wallet by address: %w", err)
	}

	return wallet, nil
}

func (r *LedgerRepository) SaveTransaction(ctx context.Context, transaction Transaction) error {
	records := []Transaction{transaction}
	err := r.db.SaveToTable(ctx, &records)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetTransactionByHash(ctx context.Context, wallet, hash string) (Transaction, error) {
	var transaction Transaction

	err := r.db.GetOneWhere(ctx, &transaction, "owning_wallet = ? AND hash = ?", wallet, hash)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by hash: %w", err)
	}

	return transaction, nil
}

// GetTransactionsByWallet returns one wallet partition, newest first. A zero
// limit means the full partition.
func (r *LedgerRepository) GetTransactionsByWallet(ctx context.Context, wallet string, limit, offset int) ([]Transaction, error) {
	transactions := []Transaction{}

	err := r.db.GetAllWhere(ctx, &transactions, "timestamp DESC", limit, offset, "owning_wallet = ?", wallet)
	if err != nil {
		return nil, fmt.Errorf("get transactions by wallet: %w", err)
	}

	return transactions, nil
}

func (r *LedgerRepository) GetTransactionsWithAddress(ctx context.Context, wallet, address string) ([]Transaction, error) {
	transactions := []Transaction{}

	addr := strings.ToLower(address)
	err := r.db.GetAllWhere(ctx, &transactions, "timestamp DESC", 0, 0,
		"owning_wallet = ? AND (from_address = ? OR to_address = ?)", wallet, addr, addr)
	if err != nil {
		return nil, fmt.Errorf("get transactions with address: %w", err)
	}

	return transactions, nil
}

// UpdateTransactionStatus patches status (and confirmations, when given) on the
// copy of the hash held in one wallet partition. Reports whether a row matched.
func (r *LedgerRepository) UpdateTransactionStatus(ctx context.Context, wallet, hash, status string, confirmations *int) (bool, error) {
	patch := map[string]any{"status": status}
	if confirmations != nil {
		patch["confirmations"] = *confirmations
	}

	affected, err := r.db.UpdateWhere(ctx, &Transaction{}, patch, "owning_wallet = ? AND hash = ?", wallet, hash)
	if err != nil {
		return false, fmt.Errorf("update transaction status: %w", err)
	}

	return affected > 0, nil
}

func (r *LedgerRepository) SaveContact(ctx context.Context, contact Contact) (Contact, error) {
	_, err := r.GetContactByAddress(ctx, contact.OwningWallet, contact.Address)
	if err == nil {
		return Contact{}, ErrContactExists
	}
	if !errors.Is(err, ErrContactNotFound) {
		return Contact{}, err
	}

	now := r.timeNow()
	contact.ID = uuid.NewString()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	records := []Contact{contact}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return Contact{}, fmt.Errorf("save contact: %w", err)
	}

	return contact, nil
}

func (r *LedgerRepository) GetContacts(ctx context.Context, wallet string) ([]Contact, error) {
	contacts := []Contact{}

	err := r.db.GetAllWhere(ctx, &contacts, "last_transaction_date DESC, name ASC", 0, 0, "owning_wallet = ?", wallet)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}

	return contacts, nil
}

func (r *LedgerRepository) GetFrequentContacts(ctx context.Context, wallet string, limit int) ([]Contact, error) {
	contacts := []Contact{}

	err := r.db.GetAllWhere(ctx, &contacts, "total_transactions DESC, last_transaction_date DESC", limit, 0, "owning_wallet = ?", wallet)
	if err != nil {
		return nil, fmt.Errorf("get frequent contacts: %w", err)
	}

	return contacts, nil
}

func (r *LedgerRepository) GetContactByAddress(ctx context.Context, wallet, address string) (Contact, error) {
	var contact Contact

	err := r.db.GetOneWhere(ctx, &contact, "owning_wallet = ? AND LOWER(address) = ?", wallet, strings.ToLower(address))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Contact{}, ErrContactNotFound
		}
		return Contact{}, fmt.Errorf("get contact by address: %w", err)
	}

	return contact, nil
}

func (r *LedgerRepository) UpdateContact(ctx context.Context, wallet, id string, patch map[string]any) error {
	patch["updated_at"] = r.timeNow()

	affected, err := r.db.UpdateWhere(ctx, &Contact{}, patch, "owning_wallet = ? AND id = ?", wallet, id)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *LedgerRepository) DeleteContact(ctx context.Context, wallet, id string) error {
	err := r.db.DeleteWhere(ctx, &Contact{}, "owning_wallet = ? AND id = ?", wallet, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}

func (r *LedgerRepository) SavePurchase(ctx context.Context, purchase Purchase) (Purchase, error) {
	purchase.ID = uuid.NewString()

	records := []Purchase{purchase}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return Purchase{}, fmt.Errorf("save purchase: %w", err)
	}

	return purchase, nil
}

func (r *LedgerRepository) GetPurchases(ctx context.Context, wallet string) ([]Purchase, error) {
	purchases := []Purchase{}

	err := r.db.GetAllWhere(ctx, &purchases, "timestamp DESC", 0, 0, "owning_wallet = ?", wallet)
	if err != nil {
		return nil, fmt.Errorf("get purchases: %w", err)
	}

	return purchases, nil
}

func (r *LedgerRepository) GetPurchaseByProviderTx(ctx context.Context, providerTxID string) (Purchase, error) {
	var purchase Purchase

	err := r.db.GetOneWhere(ctx, &purchase, "provider_transaction_id = ?", providerTxID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Purchase{}, ErrPurchaseNotFound
		}
		return Purchase{}, fmt.Errorf("get purchase by provider tx: %w", err)
	}

	return purchase, nil
}

func (r *LedgerRepository) UpdatePurchaseStatus(ctx context.Context, wallet, id, status string, transactionHash *string) error {
	patch := map[string]any{"status": status}
	if transactionHash != nil {
		patch["transaction_hash"] = *transactionHash
	}

	affected, err := r.db.UpdateWhere(ctx, &Purchase{}, patch, "owning_wallet = ? AND id = ?", wallet, id)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	if affected == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

func (r *LedgerRepository) SaveStatusUpdate(ctx context.Context, update StatusUpdate) error {
	records := []StatusUpdate{update}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return fmt.Errorf("save status update: %w", err)
	}

	return nil
}

func (r *LedgerRepository) DueStatusUpdates(ctx context.Context, now int64) ([]StatusUpdate, error) {
	updates := []StatusUpdate{}

	err := r.db.GetAllWhere(ctx, &updates, "not_before ASC", 0, 0, "not_before <= ?", now)
	if err != nil {
		return nil, fmt.Errorf("get due status updates: %w", err)
	}

	return updates, nil
}

func (r *LedgerRepository) DeleteStatusUpdate(ctx context.Context, id uint) error {
	err := r.db.DeleteWhere(ctx, &StatusUpdate{}, "id = ?", id)
	if err != nil {
		return fmt.Errorf("delete status update: %w", err)
	}

	return nil
}

// CancelStatusUpdates drops every scheduled transition for a hash, used when a
// transfer reaches failed before its confirmation fires.
func (r *LedgerRepository) CancelStatusUpdates(ctx context.Context, hash string) error {
	err := r.db.DeleteWhere(ctx, &StatusUpdate{}, "hash = ?", hash)
	if err != nil {
		return fmt.Errorf("cancel status updates: %w", err)
	}

	return nil
}
