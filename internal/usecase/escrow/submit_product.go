package escrow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

// SubmitProduct records the seller's product offer: image uploads first, then
// the submission row, the one-time price and the status flip in a single
// conditional storage transaction. Price is immutable afterwards.
func (uc *DefaultEscrowUsecase) SubmitProduct(actor domain.Actor, input *escrowdto.SubmitProductInput) error {
	tx, err := uc.loadTransaction(input.TransactionID)
	if err != nil {
		return err
	}

	if !tx.HasSeller() || !tx.IsSeller(actor.ID) {
		return domain.ErrForbidden
	}
	if input.Price <= 0 || strings.TrimSpace(input.ProductName) == "" {
		return domain.ErrValidationFailed
	}

	// Files land in the object store before the status flip so the
	// transaction can never advance to a state referencing a missing file.
	images := make([]*domain.ProductImage, 0, len(input.Images))
	for _, file := range input.Images {
		url, err := uc.Files.Upload(
			BucketTransactionImages,
			objectPath("", tx.ID, file.Name),
			file.Data,
			file.ContentType,
		)
		if err != nil {
			return fmt.Errorf("upload product image: %w", err)
		}
		images = append(images, &domain.ProductImage{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			ImageURL:      url,
			CreatedAt:     time.Now(),
		})
	}

	price := input.Price
	transition := &domain.StatusTransition{
		TransactionID: tx.ID,
		From:          []domain.TransactionStatus{domain.StatusCreated},
		To:            domain.StatusProductSubmitted,
		SetPrice:      &price,
		Submission: &domain.ProductSubmission{
			ID:            uuid.NewString(),
			TransactionID: tx.ID,
			ProductName:   strings.TrimSpace(input.ProductName),
			Description:   input.Description,
			Price:         input.Price,
			CreatedAt:     time.Now(),
		},
		Images: images,
	}

	if err := uc.TxRepo.ApplyTransition(transition); err != nil {
		uc.recordTransitionOutcome("submit_product", err)
		return err
	}

	tx.Price = input.Price
	uc.recordTransitionOutcome("submit_product", nil)
	uc.publishStatusEvent(tx, domain.StatusProductSubmitted)

	return nil
}
