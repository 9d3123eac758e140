package repository

import "time"

type Run struct {
	ID               string    `gorm:"primaryKey;size:36"`
	CreatedAt        time.Time `gorm:"not null;index"`
	WalletCount      int       `gorm:"not null;default:0"`
	TransactionCount int       `gorm:"not null;default:0"`
}

type Transaction struct {
	ID     uint    `gorm:"primaryKey"`
	RunID  string  `gorm:"size:36;not null;index:idx_tx_run_wallet"`
	Seq    int     `gorm:"not null"`
	Wallet string  `gorm:"size:128;not null;index:idx_tx_run_wallet"`
	TxHash string  `gorm:"size:66;not null"` // may be empty when upstream omits it
	Method string  `gorm:"size:255;not null"`
	Value  float64 `gorm:"not null"` // native unit, 6 decimals
}

type RiskScore struct {
	ID       uint    `gorm:"primaryKey"`
	RunID    string  `gorm:"size:36;not null;index"`
	Rank     int     `gorm:"not null"`
	Wallet   string  `gorm:"size:128;not null"`
	RawScore float64 `gorm:"not null"`
	Score    float64 `gorm:"not null"` // 0..1000
}

type ScoreDetail struct {
	ID          uint    `gorm:"primaryKey"`
	RunID       string  `gorm:"size:36;not null;index:idx_detail_run_wallet"`
	Seq         int     `gorm:"not null"`
	Wallet      string  `gorm:"size:128;not null;index:idx_detail_run_wallet"`
	TxHash      string  `gorm:"size:66;not null"`
	Rule        int     `gorm:"not null"`
	Points      float64 `gorm:"not null"`
	PointsLabel string  `gorm:"size:32;not null"`
	Reason      string  `gorm:"type:text;not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// RunBundle is everything persisted for one assessment run.
type RunBundle struct {
	Run          Run
	Transactions []Transaction
	Scores       []RiskScore
	Details      []ScoreDetail
}
