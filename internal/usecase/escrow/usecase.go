package escrow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	"github.com/sogolo/sogolo-escrow-service/internal/infrastructure/metrics"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
)

const (
	BucketTransactionImages   = "transaction-images"
	BucketTransactionReceipts = "transaction-receipts"
)

type EscrowUsecase interface {
	CreateTransaction(actor domain.Actor, input *escrowdto.CreateTransactionInput) (*domain.Transaction, error)
	JoinTransaction(actor domain.Actor, txID string) error
	SubmitProduct(actor domain.Actor, input *escrowdto.SubmitProductInput) error
	ApproveProduct(actor domain.Actor, txID string) error
	RejectProduct(actor domain.Actor, txID, reason string) error
	UploadPaymentProof(actor domain.Actor, input *escrowdto.UploadPaymentProofInput) error
	VerifyPayment(actor domain.Actor, txID string) error
	RejectPayment(actor domain.Actor, txID string) error
	SetDeliveryDetails(actor domain.Actor, input *escrowdto.SetDeliveryDetailsInput) error
	Dispatch(actor domain.Actor, input *escrowdto.DispatchInput) error
	MarkDelivered(actor domain.Actor, txID string) error
	PassInspection(actor domain.Actor, txID string) error
	FailInspection(actor domain.Actor, txID string) error
	ReleaseFunds(actor domain.Actor, txID string) error

	GetTransaction(actor domain.Actor, txID string) (*domain.Transaction, error)
	ListMyTransactions(actor domain.Actor, input *escrowdto.ListTransactionsInput) (*escrowdto.TransactionListOutput, error)
	ListAllTransactions(actor domain.Actor, input *escrowdto.ListTransactionsInput) (*escrowdto.TransactionListOutput, error)
	GetProductDetails(actor domain.Actor, txID string) (*escrowdto.ProductDetailsOutput, error)
	GetPaymentProof(actor domain.Actor, txID string) (*domain.PaymentProof, error)
	GetTransactionStats(actor domain.Actor) (*domain.TransactionStats, error)

	AddMessage(actor domain.Actor, txID, text string) (*domain.TransactionMessage, error)
	ListMessages(actor domain.Actor, txID string) ([]*domain.TransactionMessage, error)

	StartStuckTransactionsMonitor(ctx context.Context)
}

type DefaultEscrowUsecase struct {
	TxRepo    domain.TransactionRepository
	Files     domain.ObjectStore
	Publisher domain.EventPublisher
	Metrics   *metrics.EscrowMetrics
}

func NewDefaultEscrowUsecase(
	txRepo domain.TransactionRepository,
	files domain.ObjectStore,
	publisher domain.EventPublisher,
	escrowMetrics *metrics.EscrowMetrics) *DefaultEscrowUsecase {

	return &DefaultEscrowUsecase{
		TxRepo:    txRepo,
		Files:     files,
		Publisher: publisher,
		Metrics:   escrowMetrics,
	}
}

// statusLabels maps each status to the text shown in notifications. Keeping
// presentation text in one table means an unknown status is a type error,
// not a silent no-match.
var statusLabels = map[domain.TransactionStatus]string{
	domain.StatusCreated:          "Waiting for seller",
	domain.StatusProductSubmitted: "Product submitted, awaiting buyer review",
	domain.StatusProductApproved:  "Product approved, awaiting payment",
	domain.StatusRejected:         "Product rejected",
	domain.StatusPaymentUploaded:  "Payment uploaded, awaiting verification",
	domain.StatusPaymentVerified:  "Payment verified, awaiting dispatch",
	domain.StatusPaymentRejected:  "Payment rejected, re-upload required",
	domain.StatusDispatched:       "Product dispatched",
	domain.StatusProductDelivered: "Product delivered, awaiting inspection",
	domain.StatusInspectionPassed: "Inspection passed",
	domain.StatusInspectionFailed: "Inspection failed",
	domain.StatusFundsReleased:    "Funds released to seller",
}

func StatusLabel(status domain.TransactionStatus) string {
	return statusLabels[status]
}

func (uc *DefaultEscrowUsecase) loadTransaction(txID string) (*domain.Transaction, error) {
	tx, err := uc.TxRepo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// publishStatusEvent pushes the change notification asynchronously. Delivery
// is best-effort; a publish failure never fails the operation.
func (uc *DefaultEscrowUsecase) publishStatusEvent(tx *domain.Transaction, status domain.TransactionStatus) {
	if uc.Publisher == nil {
		return
	}
	go func(event domain.TransactionEvent) {
		if err := uc.Publisher.PublishTransactionEvent(event); err != nil {
			slog.Error("failed to publish transaction event",
				"transaction_id", event.TransactionID, "status", event.Status, "error", err.Error())
		}
	}(domain.TransactionEvent{
		TransactionID: tx.ID,
		BuyerID:       tx.BuyerID,
		SellerID:      tx.SellerID,
		Status:        status,
		StatusLabel:   StatusLabel(status),
		Price:         tx.Price,
		OccurredAt:    time.Now(),
	})
}

// objectPath builds the storage path for an uploaded file. Paths embed the
// transaction id and a millisecond timestamp so a retried upload never
// collides with the original.
func objectPath(prefix, txID, fileName string) string {
	if prefix != "" {
		return fmt.Sprintf("%s/%s/%d-%s", prefix, txID, time.Now().UnixMilli(), fileName)
	}
	return fmt.Sprintf("%s/%d-%s", txID, time.Now().UnixMilli(), fileName)
}
