package oneinch_history

// HistoryParams captures the query parameters of a history request
type HistoryParams struct {
	Address string
	ChainID int
	Limit   int
}

// Upstream event shapes. The aggregator nests everything under a
// details object with token actions per transfer leg.
type historyUpstreamResponse struct {
	Items []historyItemUpstream `json:"items"`
}

type historyItemUpstream struct {
	ID      string                 `json:"id"`
	Details historyDetailsUpstream `json:"details"`
}

type historyDetailsUpstream struct {
	TxHash       string                `json:"txHash"`
	ChainID      int                   `json:"chainId"`
	BlockTimeSec int64                 `json:"blockTimeSec"`
	FromAddress  string                `json:"fromAddress"`
	ToAddress    string                `json:"toAddress"`
	Type         string                `json:"type"`
	Status       string                `json:"status"`
	TokenActions []tokenActionUpstream `json:"tokenActions"`
}

type tokenActionUpstream struct {
	Address   string `json:"address"`
	Standard  string `json:"standard"`
	Amount    string `json:"amount"`
	Direction string `json:"direction"`
}

// Transaction is the flattened history entry served to the dashboard.
// Value carries the raw amount of the first token action; the frontend
// formats it with the token's decimals.
type Transaction struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Value     string `json:"value,omitempty"`
	Token     string `json:"token,omitempty"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	ChainID   int    `json:"chainId"`
}

// HistoryResponse is the transaction page served to the dashboard
type HistoryResponse struct {
	Address      string        `json:"address"`
	ChainID      int           `json:"chainId,omitempty"`
	Count        int           `json:"count"`
	Transactions []Transaction `json:"transactions"`
}
