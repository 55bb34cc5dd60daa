package escrow

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

func (uc *DefaultEscrowUsecase) CreateTransaction(actor domain.Actor, input *escrowdto.CreateTransactionInput) (*domain.Transaction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrValidationFailed
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		BuyerID:     actor.ID,
		Status:      domain.StatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.TxRepo.CreateTransaction(tx); err != nil {
		return nil, err
	}

	uc.recordTransactionCreated()
	uc.publishStatusEvent(tx, domain.StatusCreated)

	return tx, nil
}
