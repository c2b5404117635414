package oneinch_history

import (
	"fmt"
	"strings"
)

// flattenHistory reshapes the nested upstream events into flat
// transactions. Only the first token action contributes the value and
// token fields; multi-leg swaps keep their primary leg.
func flattenHistory(items []historyItemUpstream) []Transaction {
	transactions := make([]Transaction, 0, len(items))
	for _, item := range items {
		tx := Transaction{
			ID:        item.ID,
			Hash:      item.Details.TxHash,
			Timestamp: item.Details.BlockTimeSec,
			From:      strings.ToLower(item.Details.FromAddress),
			To:        strings.ToLower(item.Details.ToAddress),
			Type:      item.Details.Type,
			Status:    item.Details.Status,
			ChainID:   item.Details.ChainID,
		}

		if len(item.Details.TokenActions) > 0 {
			action := item.Details.TokenActions[0]
			tx.Value = action.Amount
			tx.Token = strings.ToLower(action.Address)
		}

		transactions = append(transactions, tx)
	}

	return transactions
}

func cacheKey(params HistoryParams) string {
	return fmt.Sprintf("history:%d:%s:%d", params.ChainID, strings.ToLower(params.Address), params.Limit)
}
