package repository

// Transaction is one ledger row, always scoped to the partition of the wallet
// it belongs to. The counterparty holds its own mirrored row under the same hash.
type Transaction struct {
	ID            uint    `gorm:"primaryKey"`
	Hash          string  `gorm:"size:66;not null;uniqueIndex:idx_wallet_hash"` // 0x + 64 hex chars
	OwningWallet  string  `gorm:"size:42;not null;uniqueIndex:idx_wallet_hash;index"`
	FromAddress   string  `gorm:"size:42;not null;index"`
	ToAddress     string  `gorm:"size:42;not null;index"`
	Value         string  `gorm:"size:100;not null"` // decimal as string
	Timestamp     int64   `gorm:"not null;index"`    // epoch milliseconds
	Status        string  `gorm:"size:20;not null"`  // pending | confirmed | failed
	Type          string  `gorm:"size:10;not null"`  // send | receive
	Token         *string `gorm:"size:42"`           // nullable token contract address
	TokenSymbol   *string `gorm:"size:20"`
	Network       string  `gorm:"size:30;not null"`
	Memo          *string `gorm:"type:text"`
	GasUsed       *string `gorm:"size:100"`
	GasPrice      *string `gorm:"size:100"`
	Fees          *string `gorm:"size:100"`
	BlockNumber   *int64
	Confirmations int `gorm:"not null;default:0"`
}

// Contact carries the per-counterparty running totals maintained from ledger
// activity. One row per (owning wallet, counterparty address).
type Contact struct {
	ID                  string `gorm:"primaryKey;autoIncrement:false"`
	OwningWallet        string `gorm:"size:42;not null;index"`
	Name                string `gorm:"size:255;not null"`
	Address             string `gorm:"size:42;not null"`
	Tags                string `gorm:"type:text"` // comma separated
	Notes               string `gorm:"type:text"`
	IsFavorite          bool   `gorm:"not null;default:false"`
	TotalTransactions   int    `gorm:"not null;default:0"`
	TotalSent           string `gorm:"size:100;not null;default:'0'"`
	TotalReceived       string `gorm:"size:100;not null;default:'0'"`
	LastTransactionDate int64  `gorm:"not null;default:0"`
	CreatedAt           int64  `gorm:"not null"`
	UpdatedAt           int64  `gorm:"not null"`
}

// Purchase is a fiat on-ramp attempt. Never mirrored; a transaction hash is
// attached only once the provider reports completion.
type Purchase struct {
	ID                    string  `gorm:"primaryKey;autoIncrement:false"`
	OwningWallet          string  `gorm:"size:42;not null;index"`
	Provider              string  `gorm:"size:50;not null"`
	FiatAmount            string  `gorm:"size:100;not null"`
	FiatCurrency          string  `gorm:"size:10;not null"`
	CryptoAmount          string  `gorm:"size:100;not null"`
	CryptoCurrency        string  `gorm:"size:20;not null"`
	Status                string  `gorm:"size:20;not null"` // pending | processing | completed | failed
	PaymentMethod         string  `gorm:"size:50;not null"`
	Timestamp             int64   `gorm:"not null;index"`
	TransactionHash       *string `gorm:"size:66"`
	Fees                  string  `gorm:"size:100;not null;default:'0'"`
	ProviderTransactionID *string `gorm:"size:100;index"`
}

// Wallet holds the unlock credentials for a demo wallet account.
type Wallet struct {
	Address      string `gorm:"primaryKey;size:42;autoIncrement:false"`
	PasswordHash string `gorm:"not null"`
	Currency     string `gorm:"size:10;not null;default:'USD'"`
	CreatedAt    int64  `gorm:"not null"`
}

// StatusUpdate is a durable deferred status transition, applied by the
// scheduler once NotBefore has passed.
type StatusUpdate struct {
	ID            uint   `gorm:"primaryKey"`
	Hash          string `gorm:"size:66;not null;index"`
	OwningWallet  string `gorm:"size:42;not null"`
	Status        string `gorm:"size:20;not null"`
	Confirmations int    `gorm:"not null;default:0"`
	NotBefore     int64  `gorm:"not null;index"` // epoch milliseconds
}
