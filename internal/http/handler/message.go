package handler

import (
	"time"
	"walletrisk/internal/core"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type scoresData struct {
	RunID            string             `json:"run_id"`
	CreatedAt        time.Time          `json:"created_at"`
	TransactionCount int                `json:"transaction_count,omitempty"`
	Scores           []core.WalletScore `json:"scores"`
}

type walletData[T any] struct {
	Wallet string `json:"wallet"`
	Items  []T    `json:"items"`
}
