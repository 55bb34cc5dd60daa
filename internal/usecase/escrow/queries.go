package escrow

import (
	"strings"
	"time"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

func (uc *DefaultEscrowUsecase) GetTransaction(actor domain.Actor, txID string) (*domain.Transaction, error) {
	tx, err := uc.loadTransaction(txID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !tx.IsParticipant(actor.ID) {
		return nil, domain.ErrForbidden
	}

	return tx, nil
}

func (uc *DefaultEscrowUsecase) ListMyTransactions(actor domain.Actor, input *escrowdto.ListTransactionsInput) (*escrowdto.TransactionListOutput, error) {
	filter, err := listFilter(input)
	if err != nil {
		return nil, err
	}

	txs, total, err := uc.TxRepo.ListByParticipant(actor.ID, filter)
	if err != nil {
		return nil, err
	}

	return &escrowdto.TransactionListOutput{Transactions: txs, Total: total}, nil
}

func (uc *DefaultEscrowUsecase) ListAllTransactions(actor domain.Actor, input *escrowdto.ListTransactionsInput) (*escrowdto.TransactionListOutput, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	filter, err := listFilter(input)
	if err != nil {
		return nil, err
	}

	txs, total, err := uc.TxRepo.ListAll(filter)
	if err != nil {
		return nil, err
	}

	return &escrowdto.TransactionListOutput{Transactions: txs, Total: total}, nil
}

func (uc *DefaultEscrowUsecase) GetProductDetails(actor domain.Actor, txID string) (*escrowdto.ProductDetailsOutput, error) {
	if _, err := uc.GetTransaction(actor, txID); err != nil {
		return nil, err
	}

	submission, images, err := uc.TxRepo.GetSubmission(txID)
	if err != nil {
		return nil, err
	}

	return &escrowdto.ProductDetailsOutput{Submission: submission, Images: images}, nil
}

// GetPaymentProof returns the most recent proof; earlier rejected attempts
// stay in storage for the audit trail.
func (uc *DefaultEscrowUsecase) GetPaymentProof(actor domain.Actor, txID string) (*domain.PaymentProof, error) {
	if _, err := uc.GetTransaction(actor, txID); err != nil {
		return nil, err
	}

	return uc.TxRepo.GetLatestPaymentProof(txID)
}

func (uc *DefaultEscrowUsecase) GetTransactionStats(actor domain.Actor) (*domain.TransactionStats, error) {
	return uc.TxRepo.GetTransactionStats(actor.ID, time.Now())
}

func listFilter(input *escrowdto.ListTransactionsInput) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{Page: 1, Limit: 20}
	if input == nil {
		return filter, nil
	}

	if input.Status != "" {
		status := domain.TransactionStatus(input.Status)
		if !status.Valid() {
			return filter, domain.ErrValidationFailed
		}
		filter.Status = status
	}
	filter.Search = strings.TrimSpace(input.Search)
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.Limit > 0 && input.Limit <= 100 {
		filter.Limit = input.Limit
	}

	return filter, nil
}
