package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"walletsync/internal/repository"
	tokenIssuer "walletsync/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var TimeNow = time.Now

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrInvalidAddress error = errors.New("invalid account address")
var ErrInvalidAmount error = errors.New("invalid transfer amount")
var ErrTransferNotFound error = errors.New("transfer not found")

// ErrPartialSync marks the asymmetric-ledger failure mode: the acting wallet's
// row is persisted but the counterparty's mirrored row is not.
var ErrPartialSync error = errors.New("mirrored record not persisted")

const mirrorConfirmations = 12

// WalletSync keeps one logical transfer consistent across both participants'
// ledger partitions and derives contact and analytics state from the ledger.
type WalletSync struct {
	logs         *zap.SugaredLogger
	repo         Repository
	jwtIssuer    JWTIssuer
	confirmDelay time.Duration
}

func NewWalletSync(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, confirmDelay time.Duration) *WalletSync {
	return &WalletSync{
		logs:         logger,
		repo:         repo,
		jwtIssuer:    jwt,
		confirmDelay: confirmDelay,
	}
}

// Unlock checks the wallet password and issues a session token whose subject is
// the wallet address.
func (w *WalletSync) Unlock(ctx context.Context, msg AuthMessage) (string, error) {
	wallet, err := w.repo.GetWallet(ctx, msg.Address)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return "", ErrWalletNotFound
		}
		return "", fmt.Errorf("get wallet from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(wallet.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    wallet.Address,
		Expiration: 24,
	}
	token := w.jwtIssuer.Generate(tokenInfo)
	signed, err := w.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// SessionFromToken resolves the acting wallet from a session token.
func (w *WalletSync) SessionFromToken(token string) (Session, error) {
	claims, err := w.jwtIssuer.Validate(token)
	if err != nil {
		return Session{}, fmt.Errorf("validate jwt token: %w", err)
	}

	wallet, ok := claims["sub"].(string)
	if !ok || wallet == "" {
		return Session{}, fmt.Errorf("session token carries no wallet subject: %w", tokenIssuer.ErrTokenNotValid)
	}

	return Session{Wallet: strings.ToLower(wallet)}, nil
}

// SendTransfer records an outgoing transfer from the session wallet, updates the
// counterparty contact totals and schedules the deferred confirmation.
func (w *WalletSync) SendTransfer(ctx context.Context, session Session, intent TransferIntent) (TransactionRecord, error) {
	intent.From = session.Wallet
	intent.Type = TypeSend

	record, err := w.newTransferRecord(intent)
	if err != nil {
		return TransactionRecord{}, err
	}

	if err := w.RecordTransfer(ctx, record); err != nil {
		return TransactionRecord{}, err
	}

	if err := w.ApplyTransferToContact(ctx, record.OwningWallet, record.ToAddress, record.Value, TypeSend, record.Timestamp); err != nil {
		w.logs.Errorw("failed to update contact totals", "error", err, "wallet", record.OwningWallet, "hash", record.Hash)
	}

	if err := w.scheduleConfirmation(ctx, record); err != nil {
		w.logs.Errorw("failed to schedule confirmation", "error", err, "hash", record.Hash)
	}

	return repoTransactionToRecord(record), nil
}

// SimulateReceive records an incoming transfer into the session wallet, already
// confirmed, mirroring a send into the counterparty partition.
func (w *WalletSync) SimulateReceive(ctx context.Context, session Session, intent TransferIntent) (TransactionRecord, error) {
	intent.To = session.Wallet
	intent.Type = TypeReceive

	record, err := w.newTransferRecord(intent)
	if err != nil {
		return TransactionRecord{}, err
	}
	record.Status = StatusConfirmed
	record.Confirmations = mirrorConfirmations

	if err := w.RecordTransfer(ctx, record); err != nil {
		return TransactionRecord{}, err
	}

	if err := w.ApplyTransferToContact(ctx, record.OwningWallet, record.FromAddress, record.Value, TypeReceive, record.Timestamp); err != nil {
		w.logs.Errorw("failed to update contact totals", "error", err, "wallet", record.OwningWallet, "hash", record.Hash)
	}

	return repoTransactionToRecord(record), nil
}

// RecordTransfer makes one logical transfer visible from both participants'
// ledgers: the record lands in the owning wallet's partition and a mirrored
// copy, type flipped, lands in the counterparty's. Idempotent per
// (wallet, hash); a self-transfer writes a single row.
func (w *WalletSync) RecordTransfer(ctx context.Context, record repository.Transaction) error {
	_, err := w.repo.GetTransactionByHash(ctx, record.OwningWallet, record.Hash)
	if err == nil {
		w.logs.Infow("transfer already recorded", "wallet", record.OwningWallet, "hash", record.Hash)
		return nil
	}
	if !errors.Is(err, repository.ErrTransactionNotFound) {
		return fmt.Errorf("check existing record: %w", err)
	}

	if err := w.repo.SaveTransaction(ctx, record); err != nil {
		return fmt.Errorf("persist record: %w", err)
	}

	counterparty := counterpartyOf(record)
	if counterparty == record.OwningWallet {
		// self-transfer: both perspectives live in the same partition
		return nil
	}

	mirror := record
	mirror.ID = 0
	mirror.OwningWallet = counterparty
	mirror.Type = flipType(record.Type)

	_, err = w.repo.GetTransactionByHash(ctx, mirror.OwningWallet, mirror.Hash)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrTransactionNotFound) {
		return fmt.Errorf("check existing mirrored record: %w: %w", err, ErrPartialSync)
	}

	if err := w.repo.SaveTransaction(ctx, mirror); err != nil {
		// the first leg is kept: the acting wallet must not lose visibility
		// of its own transfer because the counterparty write failed
		return fmt.Errorf("persist mirrored record: %w: %w", err, ErrPartialSync)
	}

	return nil
}

// PropagateStatus applies a status transition to every copy of the hash: the
// acting partition first, then the counterparty partition re-derived from the
// record's addresses. Reapplying a terminal status is a no-op.
func (w *WalletSync) PropagateStatus(ctx context.Context, wallet, hash, status string, confirmations *int) error {
	record, err := w.repo.GetTransactionByHash(ctx, wallet, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return ErrTransferNotFound
		}
		return fmt.Errorf("resolve transfer: %w", err)
	}

	if record.Status == status {
		return nil
	}
	if record.Status != StatusPending {
		w.logs.Warnw("ignoring status transition from terminal state",
			"hash", hash, "current", record.Status, "requested", status)
		return nil
	}

	if _, err := w.repo.UpdateTransactionStatus(ctx, wallet, hash, status, confirmations); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	counterparty := counterpartyOf(record)
	if counterparty != wallet {
		found, err := w.repo.UpdateTransactionStatus(ctx, counterparty, hash, status, confirmations)
		if err != nil {
			w.logs.Errorw("failed to update mirrored copy", "error", err, "hash", hash, "wallet", counterparty)
		} else if !found {
			w.logs.Warnw("mirrored copy missing, ledger is asymmetric", "hash", hash, "wallet", counterparty)
		}
	}

	if status == StatusFailed {
		if err := w.repo.CancelStatusUpdates(ctx, hash); err != nil {
			w.logs.Errorw("failed to cancel scheduled updates", "error", err, "hash", hash)
		}
	}

	return nil
}

// TransactionHistory returns the session wallet's partition, newest first.
func (w *WalletSync) TransactionHistory(ctx context.Context, session Session, limit, offset int) ([]TransactionRecord, error) {
	transactions, err := w.repo.GetTransactionsByWallet(ctx, session.Wallet, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	return repoTransactionsToRecords(transactions), nil
}

// TransactionsWithAddress returns the session wallet's records involving one
// counterparty, either side of the transfer.
func (w *WalletSync) TransactionsWithAddress(ctx context.Context, session Session, address string) ([]TransactionRecord, error) {
	if !common.IsHexAddress(address) {
		return nil, ErrInvalidAddress
	}

	transactions, err := w.repo.GetTransactionsWithAddress(ctx, session.Wallet, address)
	if err != nil {
		return nil, fmt.Errorf("get transactions with address: %w", err)
	}

	return repoTransactionsToRecords(transactions), nil
}

func (w *WalletSync) newTransferRecord(intent TransferIntent) (repository.Transaction, error) {
	if !common.IsHexAddress(intent.From) || !common.IsHexAddress(intent.To) {
		return repository.Transaction{}, ErrInvalidAddress
	}

	amount, err := decimal.NewFromString(intent.Value)
	if err != nil || amount.IsNegative() {
		return repository.Transaction{}, ErrInvalidAmount
	}

	hash, err := generateTransferHash()
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("generate transfer hash: %w", err)
	}

	from := strings.ToLower(intent.From)
	to := strings.ToLower(intent.To)

	owner := from
	if intent.Type == TypeReceive {
		owner = to
	}

	gasUsed, gasPrice, fees := "21000", "20", "0.00042"
	return repository.Transaction{
		Hash:         hash,
		OwningWallet: owner,
		FromAddress:  from,
		ToAddress:    to,
		Value:        amount.String(),
		Timestamp:    TimeNow().UnixMilli(),
		Status:       StatusPending,
		Type:         intent.Type,
		Token:        intent.Token,
		TokenSymbol:  intent.TokenSymbol,
		Network:      intent.Network,
		Memo:         intent.Memo,
		GasUsed:      &gasUsed,
		GasPrice:     &gasPrice,
		Fees:         &fees,
	}, nil
}

func (w *WalletSync) scheduleConfirmation(ctx context.Context, record repository.Transaction) error {
	update := repository.StatusUpdate{
		Hash:          record.Hash,
		OwningWallet:  record.OwningWallet,
		Status:        StatusConfirmed,
		Confirmations: mirrorConfirmations,
		NotBefore:     TimeNow().Add(w.confirmDelay).UnixMilli(),
	}

	if err := w.repo.SaveStatusUpdate(ctx, update); err != nil {
		return fmt.Errorf("save status update: %w", err)
	}

	return nil
}

func counterpartyOf(record repository.Transaction) string {
	if record.Type == TypeSend {
		return record.ToAddress
	}
	return record.FromAddress
}

func flipType(transferType string) string {
	if transferType == TypeSend {
		return TypeReceive
	}
	return TypeSend
}

// generateTransferHash produces a random 0x-prefixed 32-byte identifier standing
// in for a chain-assigned transaction id.
func generateTransferHash() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return fmt.Sprintf("0x%s", hex.EncodeToString(buf)), nil
}

func repoTransactionToRecord(transaction repository.Transaction) TransactionRecord {
	return TransactionRecord{
		Hash:          transaction.Hash,
		From:          transaction.FromAddress,
		To:            transaction.ToAddress,
		Value:         transaction.Value,
		Timestamp:     transaction.Timestamp,
		Status:        transaction.Status,
		Type:          transaction.Type,
		Token:         transaction.Token,
		TokenSymbol:   transaction.TokenSymbol,
		Network:       transaction.Network,
		Memo:          transaction.Memo,
		GasUsed:       transaction.GasUsed,
		GasPrice:      transaction.GasPrice,
		Fees:          transaction.Fees,
		BlockNumber:   transaction.BlockNumber,
		Confirmations: transaction.Confirmations,
		OwningWallet:  transaction.OwningWallet,
	}
}

func repoTransactionsToRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = repoTransactionToRecord(tx)
	}
	return records
}
