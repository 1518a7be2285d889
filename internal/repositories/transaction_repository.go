package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lessonhub/internal/models/db_models"
)

type TransactionRepositoryInterface interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func (t *transactionRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Updates(fields).Error
}
