package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// storageErr wraps driver failures in the typed sentinel so callers can
// distinguish an unavailable store from a violated precondition.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

func (r *DefaultTransactionRepository) CreateTransaction(tx *domain.Transaction) error {
	model := mappers.ToGORMTransaction(tx)
	if err := r.DB.Create(model).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(txID string) (*domain.Transaction, error) {
	var model models.TransactionModel
	if err := r.DB.First(&model, "id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, storageErr(err)
	}
	return mappers.ToDomainTransaction(&model), nil
}

// ClaimSeller writes seller_id only while the column is still empty. The
// WHERE clause carries the once-only invariant, so two concurrent joins
// resolve in the database: one row update, one conflict.
func (r *DefaultTransactionRepository) ClaimSeller(txID, sellerID string) error {
	res := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND (seller_id IS NULL OR seller_id = '')", txID).
		Updates(map[string]interface{}{
			"seller_id":  sellerID,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetTransactionByID(txID); err != nil {
			return err
		}
		return domain.ErrConflict
	}
	return nil
}

// ApplyTransition performs the conditional single-row status update together
// with the transition's side records, all in one storage transaction. The
// status write applies only while the row still holds one of the expected
// predecessor statuses; a concurrent transition loses with ErrInvalidState.
func (r *DefaultTransactionRepository) ApplyTransition(tr *domain.StatusTransition) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     tr.To,
			"updated_at": time.Now(),
		}
		if tr.SetPrice != nil {
			updates["price"] = *tr.SetPrice
		}
		if tr.SetReason != nil {
			updates["rejection_reason"] = *tr.SetReason
		}

		res := tx.Model(&models.TransactionModel{}).
			Where("id = ? AND status IN ?", tr.TransactionID, tr.From).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.TransactionModel{}).
				Where("id = ?", tr.TransactionID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrTransactionNotFound
			}
			return domain.ErrInvalidState
		}

		if tr.Submission != nil {
			if err := tx.Create(mappers.ToGORMSubmission(tr.Submission)).Error; err != nil {
				return err
			}
		}
		for _, img := range tr.Images {
			if err := tx.Create(mappers.ToGORMImage(img)).Error; err != nil {
				return err
			}
		}
		if tr.PaymentProof != nil {
			if err := tx.Create(mappers.ToGORMPaymentProof(tr.PaymentProof)).Error; err != nil {
				return err
			}
		}
		if tr.Receipt != nil {
			if err := tx.Create(mappers.ToGORMReceipt(tr.Receipt)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}
		return storageErr(err)
	}
	return nil
}

func (r *DefaultTransactionRepository) SetDeliveryDetails(txID, method, branch string) error {
	res := r.DB.Model(&models.TransactionModel{}).
		Where("id = ?", txID).
		Updates(map[string]interface{}{
			"delivery_method": method,
			"delivery_branch": branch,
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *DefaultTransactionRepository) ListByParticipant(userID string, filter domain.TransactionFilter) ([]*domain.Transaction, int64, error) {
	query := r.DB.Model(&models.TransactionModel{}).
		Where("buyer_id = ? OR seller_id = ?", userID, userID)
	return r.list(query, filter)
}

func (r *DefaultTransactionRepository) ListAll(filter domain.TransactionFilter) ([]*domain.Transaction, int64, error) {
	return r.list(r.DB.Model(&models.TransactionModel{}), filter)
}

func (r *DefaultTransactionRepository) list(query *gorm.DB, filter domain.TransactionFilter) ([]*domain.Transaction, int64, error) {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR id IN (SELECT transaction_id FROM product_submission_models WHERE product_name ILIKE ?)",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, storageErr(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var txModels []models.TransactionModel
	err := query.
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&txModels).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}

	txs := make([]*domain.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = mappers.ToDomainTransaction(&txModels[i])
	}
	return txs, total, nil
}

func (r *DefaultTransactionRepository) GetSubmission(txID string) (*domain.ProductSubmission, []*domain.ProductImage, error) {
	var subModel models.ProductSubmissionModel
	if err := r.DB.First(&subModel, "transaction_id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrRecordNotFound
		}
		return nil, nil, storageErr(err)
	}

	var imageModels []models.ProductImageModel
	if err := r.DB.
		Where("transaction_id = ?", txID).
		Order("created_at ASC").
		Find(&imageModels).Error; err != nil {
		return nil, nil, storageErr(err)
	}

	images := make([]*domain.ProductImage, len(imageModels))
	for i := range imageModels {
		images[i] = mappers.ToDomainImage(&imageModels[i])
	}
	return mappers.ToDomainSubmission(&subModel), images, nil
}

func (r *DefaultTransactionRepository) GetLatestPaymentProof(txID string) (*domain.PaymentProof, error) {
	var model models.PaymentProofModel
	err := r.DB.
		Where("transaction_id = ?", txID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, storageErr(err)
	}
	return mappers.ToDomainPaymentProof(&model), nil
}

func (r *DefaultTransactionRepository) GetDispatchReceipt(txID string) (*domain.DispatchReceipt, error) {
	var model models.DispatchReceiptModel
	if err := r.DB.First(&model, "transaction_id = ?", txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, storageErr(err)
	}
	return mappers.ToDomainReceipt(&model), nil
}

func (r *DefaultTransactionRepository) GetTransactionStats(userID string, now time.Time) (*domain.TransactionStats, error) {
	stats := &domain.TransactionStats{
		ByStatus: make(map[domain.TransactionStatus]int64),
	}

	baseQuery := func() *gorm.DB {
		return r.DB.Model(&models.TransactionModel{}).
			Where("buyer_id = ? OR seller_id = ?", userID, userID)
	}

	if err := baseQuery().Count(&stats.Total).Error; err != nil {
		return nil, storageErr(err)
	}

	type statusAgg struct {
		Status domain.TransactionStatus
		Count  int64
	}
	var perStatus []statusAgg
	if err := baseQuery().
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&perStatus).Error; err != nil {
		return nil, storageErr(err)
	}
	for _, agg := range perStatus {
		stats.ByStatus[agg.Status] = agg.Count
	}

	type amountAgg struct {
		Sum float64
	}
	var amount amountAgg
	if err := baseQuery().
		Select("COALESCE(SUM(price), 0) as sum").
		Scan(&amount).Error; err != nil {
		return nil, storageErr(err)
	}
	stats.TotalAmount = amount.Sum

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := baseQuery().
		Where("created_at >= ?", monthStart).
		Count(&stats.ThisMonth).Error; err != nil {
		return nil, storageErr(err)
	}

	return stats, nil
}

func (r *DefaultTransactionRepository) FindStaleTransactions(olderThan time.Time) ([]*domain.Transaction, error) {
	var txModels []models.TransactionModel
	err := r.DB.
		Where("status NOT IN ?", domain.TerminalStatuses()).
		Where("updated_at < ?", olderThan).
		Find(&txModels).Error
	if err != nil {
		return nil, storageErr(err)
	}

	txs := make([]*domain.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = mappers.ToDomainTransaction(&txModels[i])
	}
	return txs, nil
}

func (r *DefaultTransactionRepository) AddMessage(msg *domain.TransactionMessage) error {
	if err := r.DB.Create(mappers.ToGORMMessage(msg)).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

func (r *DefaultTransactionRepository) ListMessages(txID string) ([]*domain.TransactionMessage, error) {
	var msgModels []models.TransactionMessageModel
	err := r.DB.
		Where("transaction_id = ?", txID).
		Order("created_at ASC").
		Find(&msgModels).Error
	if err != nil {
		return nil, storageErr(err)
	}

	msgs := make([]*domain.TransactionMessage, len(msgModels))
	for i := range msgModels {
		msgs[i] = mappers.ToDomainMessage(&msgModels[i])
	}
	return msgs, nil
}
