package escrowdto

import "github.com/sogolo/sogolo-escrow-service/internal/domain"

type TransactionListOutput struct {
	Transactions []*domain.Transaction
	Total        int64
}

type ProductDetailsOutput struct {
	Submission *domain.ProductSubmission
	Images     []*domain.ProductImage
}
