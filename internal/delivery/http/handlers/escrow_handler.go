package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sogolo/sogolo-escrow-service/internal/delivery/http/dto"
	authmw "github.com/sogolo/sogolo-escrow-service/internal/delivery/http/middleware"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
	escrowdto "github.com/sogolo/sogolo-escrow-service/internal/usecase/dto/escrow"
	"github.com/sogolo/sogolo-escrow-service/internal/usecase/escrow"
)

type EscrowHandler struct {
	uc escrow.EscrowUsecase
}

func NewEscrowHandler(e *echo.Echo, uc escrow.EscrowUsecase, auth echo.MiddlewareFunc) *EscrowHandler {
	handler := &EscrowHandler{uc: uc}

	api := e.Group("/api", auth)

	api.POST("/transactions", handler.createTransaction)
	api.GET("/transactions", handler.listMyTransactions)
	api.GET("/transactions/:id", handler.getTransaction)
	api.POST("/transactions/:id/join", handler.joinTransaction)
	api.POST("/transactions/:id/product", handler.submitProduct)
	api.GET("/transactions/:id/product", handler.getProductDetails)
	api.POST("/transactions/:id/approve-product", handler.approveProduct)
	api.POST("/transactions/:id/reject-product", handler.rejectProduct)
	api.POST("/transactions/:id/payment-proof", handler.uploadPaymentProof)
	api.GET("/transactions/:id/payment-proof", handler.getPaymentProof)
	api.POST("/transactions/:id/verify-payment", handler.verifyPayment)
	api.POST("/transactions/:id/reject-payment", handler.rejectPayment)
	api.PUT("/transactions/:id/delivery", handler.setDeliveryDetails)
	api.POST("/transactions/:id/dispatch", handler.dispatch)
	api.POST("/transactions/:id/delivered", handler.markDelivered)
	api.POST("/transactions/:id/pass-inspection", handler.passInspection)
	api.POST("/transactions/:id/fail-inspection", handler.failInspection)
	api.POST("/transactions/:id/release-funds", handler.releaseFunds)
	api.GET("/transactions/:id/messages", handler.listMessages)
	api.POST("/transactions/:id/messages", handler.addMessage)
	api.GET("/me/stats", handler.getStats)
	api.GET("/admin/transactions", handler.listAllTransactions)

	return handler
}

func (h *EscrowHandler) createTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	tx, err := h.uc.CreateTransaction(authmw.ActorFromContext(c), &escrowdto.CreateTransactionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx, escrow.StatusLabel(tx.Status)))
}

func (h *EscrowHandler) getTransaction(c echo.Context) error {
	tx, err := h.uc.GetTransaction(authmw.ActorFromContext(c), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewTransactionResponse(tx, escrow.StatusLabel(tx.Status)))
}

func (h *EscrowHandler) joinTransaction(c echo.Context) error {
	if err := h.uc.JoinTransaction(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) submitProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	images, err := readUploads(form.File["images"])
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	err = h.uc.SubmitProduct(authmw.ActorFromContext(c), &escrowdto.SubmitProductInput{
		TransactionID: c.Param("id"),
		ProductName:   c.FormValue("product_name"),
		Description:   c.FormValue("product_description"),
		Price:         price,
		Images:        images,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) getProductDetails(c echo.Context) error {
	details, err := h.uc.GetProductDetails(authmw.ActorFromContext(c), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	urls := make([]string, len(details.Images))
	for i, img := range details.Images {
		urls[i] = img.ImageURL
	}
	return c.JSON(http.StatusOK, dto.ProductDetailsResponse{
		ProductName:        details.Submission.ProductName,
		ProductDescription: details.Submission.Description,
		Price:              details.Submission.Price,
		ImageURLs:          urls,
	})
}

func (h *EscrowHandler) approveProduct(c echo.Context) error {
	if err := h.uc.ApproveProduct(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) rejectProduct(c echo.Context) error {
	var req dto.RejectProductRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	if err := h.uc.RejectProduct(authmw.ActorFromContext(c), c.Param("id"), req.Reason); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) uploadPaymentProof(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	proof, err := readUpload(fileHeader)
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	err = h.uc.UploadPaymentProof(authmw.ActorFromContext(c), &escrowdto.UploadPaymentProofInput{
		TransactionID: c.Param("id"),
		Amount:        amount,
		Proof:         proof,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) getPaymentProof(c echo.Context) error {
	proof, err := h.uc.GetPaymentProof(authmw.ActorFromContext(c), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.PaymentProofResponse{
		ProofURL:  proof.ProofURL,
		Amount:    proof.Amount,
		CreatedAt: proof.CreatedAt,
	})
}

func (h *EscrowHandler) verifyPayment(c echo.Context) error {
	if err := h.uc.VerifyPayment(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) rejectPayment(c echo.Context) error {
	if err := h.uc.RejectPayment(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) setDeliveryDetails(c echo.Context) error {
	var req dto.SetDeliveryDetailsRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	err := h.uc.SetDeliveryDetails(authmw.ActorFromContext(c), &escrowdto.SetDeliveryDetailsInput{
		TransactionID:  c.Param("id"),
		DeliveryMethod: req.DeliveryMethod,
		DeliveryBranch: req.DeliveryBranch,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) dispatch(c echo.Context) error {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	receipt, err := readUpload(fileHeader)
	if err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}

	err = h.uc.Dispatch(authmw.ActorFromContext(c), &escrowdto.DispatchInput{
		TransactionID: c.Param("id"),
		Receipt:       receipt,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) markDelivered(c echo.Context) error {
	if err := h.uc.MarkDelivered(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) passInspection(c echo.Context) error {
	if err := h.uc.PassInspection(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) failInspection(c echo.Context) error {
	if err := h.uc.FailInspection(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) releaseFunds(c echo.Context) error {
	if err := h.uc.ReleaseFunds(authmw.ActorFromContext(c), c.Param("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EscrowHandler) listMyTransactions(c echo.Context) error {
	out, err := h.uc.ListMyTransactions(authmw.ActorFromContext(c), listInput(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, listResponse(out))
}

func (h *EscrowHandler) listAllTransactions(c echo.Context) error {
	out, err := h.uc.ListAllTransactions(authmw.ActorFromContext(c), listInput(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, listResponse(out))
}

func (h *EscrowHandler) getStats(c echo.Context) error {
	stats, err := h.uc.GetTransactionStats(authmw.ActorFromContext(c))
	if err != nil {
		return errorResponse(c, err)
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return c.JSON(http.StatusOK, dto.StatsResponse{
		Total:       stats.Total,
		ByStatus:    byStatus,
		TotalAmount: stats.TotalAmount,
		ThisMonth:   stats.ThisMonth,
	})
}

func (h *EscrowHandler) addMessage(c echo.Context) error {
	var req dto.AddMessageRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, domain.ErrValidationFailed)
	}
	msg, err := h.uc.AddMessage(authmw.ActorFromContext(c), c.Param("id"), req.Message)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MessageResponse{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	})
}

func (h *EscrowHandler) listMessages(c echo.Context) error {
	msgs, err := h.uc.ListMessages(authmw.ActorFromContext(c), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	out := make([]dto.MessageResponse, len(msgs))
	for i, msg := range msgs {
		out[i] = dto.MessageResponse{
			ID:        msg.ID,
			UserID:    msg.UserID,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func listInput(c echo.Context) *escrowdto.ListTransactionsInput {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	return &escrowdto.ListTransactionsInput{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}
}

func listResponse(out *escrowdto.TransactionListOutput) dto.TransactionListResponse {
	resp := dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, len(out.Transactions)),
		Total:        out.Total,
	}
	for i, tx := range out.Transactions {
		resp.Transactions[i] = dto.NewTransactionResponse(tx, escrow.StatusLabel(tx.Status))
	}
	return resp
}

func readUpload(fileHeader *multipart.FileHeader) (escrowdto.FileUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return escrowdto.FileUpload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return escrowdto.FileUpload{}, err
	}

	return escrowdto.FileUpload{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readUploads(fileHeaders []*multipart.FileHeader) ([]escrowdto.FileUpload, error) {
	uploads := make([]escrowdto.FileUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		upload, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}
