package dto

type CreateTransactionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RejectProductRequest struct {
	Reason string `json:"reason"`
}

type SetDeliveryDetailsRequest struct {
	DeliveryMethod string `json:"delivery_method"`
	DeliveryBranch string `json:"delivery_branch"`
}

type AddMessageRequest struct {
	Message string `json:"message"`
}
