package escrow

import (
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

func (uc *DefaultEscrowUsecase) AddMessage(actor domain.Actor, txID, text string) (*domain.TransactionMessage, error) {
	if _, err := uc.GetTransaction(actor, txID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrValidationFailed
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	msg := &domain.TransactionMessage{
		ID:            idGenerator(),
		TransactionID: txID,
		UserID:        actor.ID,
		Message:       text,
		CreatedAt:     time.Now(),
	}
	if err := uc.TxRepo.AddMessage(msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (uc *DefaultEscrowUsecase) ListMessages(actor domain.Actor, txID string) ([]*domain.TransactionMessage, error) {
	if _, err := uc.GetTransaction(actor, txID); err != nil {
		return nil, err
	}

	return uc.TxRepo.ListMessages(txID)
}
