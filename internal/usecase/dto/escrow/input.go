package escrowdto

type CreateTransactionInput struct {
	Title       string
	Description string
}

type SubmitProductInput struct {
	TransactionID string
	ProductName   string
	Description   string
	Price         float64
	Images        []FileUpload
}

// FileUpload carries raw file bytes from the delivery layer; the engine
// derives the storage path itself.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

type UploadPaymentProofInput struct {
	TransactionID string
	Amount        float64
	Proof         FileUpload
}

type DispatchInput struct {
	TransactionID string
	Receipt       FileUpload
}

type SetDeliveryDetailsInput struct {
	TransactionID  string
	DeliveryMethod string
	DeliveryBranch string
}

type ListTransactionsInput struct {
	Status string
	Search string
	Page   int64
	Limit  int64
}
