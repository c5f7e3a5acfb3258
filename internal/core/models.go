package core

// Transfer statuses. Pending may move to confirmed or failed; both of those are
// terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Transfer direction relative to the owning wallet partition.
const (
	TypeSend    = "send"
	TypeReceive = "receive"
)

// Purchase statuses reported by fiat on-ramp providers.
const (
	PurchasePending    = "pending"
	PurchaseProcessing = "processing"
	PurchaseCompleted  = "completed"
	PurchaseFailed     = "failed"
)

// TransferIntent is a transfer as requested by the acting wallet, before a hash
// is assigned and before it enters the ledger.
type TransferIntent struct {
	From        string
	To          string
	Value       string
	Type        string
	Network     string
	Token       *string
	TokenSymbol *string
	Memo        *string
}

// TransactionRecord is one ledger entry seen from the owning wallet's
// perspective. The mirrored copy in the counterparty partition shares the hash
// and carries the opposite type.
type TransactionRecord struct {
	Hash          string  `json:"hash"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Value         string  `json:"value"`
	Timestamp     int64   `json:"timestamp"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	Token         *string `json:"token,omitempty"`
	TokenSymbol   *string `json:"tokenSymbol,omitempty"`
	Network       string  `json:"network"`
	Memo          *string `json:"memo,omitempty"`
	GasUsed       *string `json:"gasUsed,omitempty"`
	GasPrice      *string `json:"gasPrice,omitempty"`
	Fees          *string `json:"fees,omitempty"`
	BlockNumber   *int64  `json:"blockNumber,omitempty"`
	Confirmations int     `json:"confirmations"`
	OwningWallet  string  `json:"walletAddress"`
}

type ContactRecord struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Address             string   `json:"address"`
	Tags                []string `json:"tags"`
	Notes               string   `json:"notes,omitempty"`
	IsFavorite          bool     `json:"isFavorite"`
	TotalTransactions   int      `json:"totalTransactions"`
	TotalSent           string   `json:"totalSent"`
	TotalReceived       string   `json:"totalReceived"`
	LastTransactionDate int64    `json:"lastTransactionDate"`
	OwningWallet        string   `json:"walletAddress"`
}

type PurchaseRecord struct {
	ID                    string  `json:"id"`
	Provider              string  `json:"provider"`
	FiatAmount            string  `json:"fiatAmount"`
	FiatCurrency          string  `json:"fiatCurrency"`
	CryptoAmount          string  `json:"cryptoAmount"`
	CryptoCurrency        string  `json:"cryptoCurrency"`
	Status                string  `json:"status"`
	PaymentMethod         string  `json:"paymentMethod"`
	Timestamp             int64   `json:"timestamp"`
	TransactionHash       *string `json:"transactionHash,omitempty"`
	Fees                  string  `json:"fees"`
	ProviderTransactionID *string `json:"providerTransactionId,omitempty"`
	OwningWallet          string  `json:"walletAddress"`
}

// AnalyticsSummary is the read-only rollup over one wallet's full transaction
// set. Sums stay decimal strings end to end.
type AnalyticsSummary struct {
	TotalSent         string         `json:"totalSent"`
	TotalReceived     string         `json:"totalReceived"`
	TotalTransactions int            `json:"totalTransactions"`
	DailyActivity     map[string]int `json:"dailyActivity"`
	RecentActivity    []DailyCount   `json:"recentActivity"`
	TopContacts       []TopContact   `json:"topContacts"`
}

type DailyCount struct {
	Date  string `json:"date"` // UTC, YYYY-MM-DD
	Count int    `json:"count"`
}

type TopContact struct {
	Address string `json:"address"`
	Count   int    `json:"count"`
}

type AuthMessage struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Session identifies the acting wallet for the lifetime of one unlocked
// session token.
type Session struct {
	Wallet string
}

// WebhookEvent is the provider-agnostic shape a payment webhook is normalized
// into before it touches the purchase ledger.
type WebhookEvent struct {
	ProviderTransactionID string
	Status                string
	TransactionHash       *string
}
