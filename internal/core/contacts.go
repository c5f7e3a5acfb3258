package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"walletsync/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var ErrContactExists error = errors.New("contact already exists")
var ErrContactNotFound error = errors.New("contact not found")

// ApplyTransferToContact folds one transfer into the counterparty's running
// totals. Contacts are opt-in: an unknown counterparty is a no-op, never an
// implicit creation.
func (w *WalletSync) ApplyTransferToContact(ctx context.Context, wallet, counterparty, amount, direction string, timestamp int64) error {
	contact, err := w.repo.GetContactByAddress(ctx, wallet, counterparty)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil
		}
		return fmt.Errorf("lookup contact: %w", err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return ErrInvalidAmount
	}

	patch := map[string]any{
		"total_transactions":    contact.TotalTransactions + 1,
		"last_transaction_date": timestamp,
	}

	if direction == TypeSend {
		patch["total_sent"] = addDecimalString(contact.TotalSent, value)
	} else {
		patch["total_received"] = addDecimalString(contact.TotalReceived, value)
	}

	if err := w.repo.UpdateContact(ctx, wallet, contact.ID, patch); err != nil {
		return fmt.Errorf("update contact totals: %w", err)
	}

	return nil
}

type ContactIntent struct {
	Name       string
	Address    string
	Tags       []string
	Notes      string
	IsFavorite bool
}

func (w *WalletSync) AddContact(ctx context.Context, session Session, intent ContactIntent) (ContactRecord, error) {
	if !common.IsHexAddress(intent.Address) {
		return ContactRecord{}, ErrInvalidAddress
	}

	contact := repository.Contact{
		OwningWallet:  session.Wallet,
		Name:          intent.Name,
		Address:       strings.ToLower(intent.Address),
		Tags:          strings.Join(intent.Tags, ","),
		Notes:         intent.Notes,
		IsFavorite:    intent.IsFavorite,
		TotalSent:     "0",
		TotalReceived: "0",
	}

	saved, err := w.repo.SaveContact(ctx, contact)
	if err != nil {
		if errors.Is(err, repository.ErrContactExists) {
			return ContactRecord{}, ErrContactExists
		}
		return ContactRecord{}, fmt.Errorf("save contact: %w", err)
	}

	return repoContactToRecord(saved), nil
}

func (w *WalletSync) Contacts(ctx context.Context, session Session) ([]ContactRecord, error) {
	contacts, err := w.repo.GetContacts(ctx, session.Wallet)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}

	return repoContactsToRecords(contacts), nil
}

// FrequentContacts ranks the wallet's contacts by transfer count.
func (w *WalletSync) FrequentContacts(ctx context.Context, session Session, limit int) ([]ContactRecord, error) {
	contacts, err := w.repo.GetFrequentContacts(ctx, session.Wallet, limit)
	if err != nil {
		return nil, fmt.Errorf("get frequent contacts: %w", err)
	}

	return repoContactsToRecords(contacts), nil
}

type ContactUpdate struct {
	Name       *string
	Tags       []string
	Notes      *string
	IsFavorite *bool
}

func (w *WalletSync) UpdateContact(ctx context.Context, session Session, id string, update ContactUpdate) error {
	patch := map[string]any{}
	if update.Name != nil {
		patch["name"] = *update.Name
	}
	if update.Tags != nil {
		patch["tags"] = strings.Join(update.Tags, ",")
	}
	if update.Notes != nil {
		patch["notes"] = *update.Notes
	}
	if update.IsFavorite != nil {
		patch["is_favorite"] = *update.IsFavorite
	}

	err := w.repo.UpdateContact(ctx, session.Wallet, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

func (w *WalletSync) DeleteContact(ctx context.Context, session Session, id string) error {
	if err := w.repo.DeleteContact(ctx, session.Wallet, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}

func addDecimalString(current string, delta decimal.Decimal) string {
	base, err := decimal.NewFromString(current)
	if err != nil {
		base = decimal.Zero
	}
	return base.Add(delta).String()
}

func repoContactToRecord(contact repository.Contact) ContactRecord {
	tags := []string{}
	if contact.Tags != "" {
		tags = strings.Split(contact.Tags, ",")
	}

	return ContactRecord{
		ID:                  contact.ID,
		Name:                contact.Name,
		Address:             contact.Address,
		Tags:                tags,
		Notes:               contact.Notes,
		IsFavorite:          contact.IsFavorite,
		TotalTransactions:   contact.TotalTransactions,
		TotalSent:           contact.TotalSent,
		TotalReceived:       contact.TotalReceived,
		LastTransactionDate: contact.LastTransactionDate,
		OwningWallet:        contact.OwningWallet,
	}
}

func repoContactsToRecords(contacts []repository.Contact) []ContactRecord {
	records := make([]ContactRecord, len(contacts))
	for i, c := range contacts {
		records[i] = repoContactToRecord(c)
	}
	return records
}
