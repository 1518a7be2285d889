package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payOSHQ/payos-lib-golang"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string // secret used to sign webhooks
	ReturnURL    string
	CancelURL    string
	ProviderName string // "payos" (stored on Transaction.Provider)
	AmountMinor  int64  // fixed one-time upgrade price
	Currency     string
}

type PaymentService interface {
	CreateCheckout(ctx context.Context, caller *db_models.Account) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	accounts repositories.AccountRepository
	txns     repositories.TransactionRepositoryInterface
	cfg      PayOSConfig

	// Provider calls, injectable for tests.
	createLink    func(payos.CheckoutRequestType) (*payos.CheckoutResponseDataType, error)
	verifyWebhook func(payos.WebhookType) (*payos.WebhookDataType, error)
}

func NewPaymentService(
	accounts repositories.AccountRepository,
	txns repositories.TransactionRepositoryInterface,
	cfg PayOSConfig,
) (PaymentService, error) {
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	if err := payos.Key(cfg.ClientID, cfg.ApiKey, cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}
	if cfg.AmountMinor <= 0 {
		return nil, errors.New("upgrade price must be positive")
	}

	return &paymentService{
		accounts:      accounts,
		txns:          txns,
		cfg:           cfg,
		createLink:    payos.CreatePaymentLink,
		verifyWebhook: payos.VerifyPaymentWebhookData,
	}, nil
}

// CreateCheckout requests a single-line-item, one-time payment session for a
// premium upgrade. The caller's email rides along twice: structured in the
// pending transaction's metadata (preferred on callback) and inside the
// checkout description as a redundant fallback.
func (p *paymentService) CreateCheckout(ctx context.Context, caller *db_models.Account) (*response_models.CreateCheckoutResponse, error) {
	if caller.IsPremium {
		return nil, utils.ErrAlreadyPremium
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps it within range and collision-unlikely.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	metadata, _ := json.Marshal(map[string]string{"user_email": caller.Email})
	txn := &db_models.Transaction{
		AccountID:     caller.ID,
		AmountMinor:   p.cfg.AmountMinor,
		Currency:      p.cfg.Currency,
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
		Metadata:      metadata,
	}
	if err := p.txns.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(p.cfg.AmountMinor),
		Items: []payos.Item{{
			Name:     "Premium upgrade",
			Price:    int(p.cfg.AmountMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Premium upgrade for %s", caller.Email),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := p.createLink(body)
	if err != nil {
		_ = p.txns.UpdateFields(ctx, txn.ID.String(), map[string]interface{}{"status": db_models.TxnStatusFailed})
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:   orderCode,
		Amount:      p.cfg.AmountMinor,
		Currency:    p.cfg.Currency,
		CheckoutURL: resp.CheckoutUrl,
	}, nil
}

// HandleWebhook processes the provider's signed callback. A bad signature is
// rejected with 400 and no state change. Once the signature checks out, the
// provider always gets a 200 acknowledgment — internal failures are logged,
// never surfaced, so the provider does not retry a permanently failing
// update forever.
func (p *paymentService) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("webhook: reading body: %v", err)
		utils.HandleServiceError(c, utils.ErrInvalidSignature)
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("webhook: parsing payload: %v", err)
		utils.HandleServiceError(c, utils.ErrInvalidSignature)
		return
	}

	data, err := p.verifyWebhook(body)
	if err != nil {
		log.Printf("webhook: signature verification failed: %v", err)
		utils.HandleServiceError(c, utils.ErrInvalidSignature)
		return
	}

	// payOS sends order code 123 when confirming the webhook endpoint.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "webhook confirmed"})
		return
	}

	// Only code "00" marks a completed payment; anything else is still
	// acknowledged so the provider stops redelivering it.
	if data.Code != "00" {
		log.Printf("webhook: ignoring non-success event for order %d (code %s)", int64(data.OrderCode), data.Code)
		c.JSON(http.StatusOK, gin.H{"message": "acknowledged"})
		return
	}

	p.applyPaidEvent(c.Request.Context(), int64(data.OrderCode))
	c.JSON(http.StatusOK, gin.H{"message": "acknowledged"})
}

func (p *paymentService) applyPaidEvent(ctx context.Context, orderCode int64) {
	providerTxn := fmt.Sprintf("payos:%d", orderCode)

	txn, err := p.txns.FindByProviderTxnID(ctx, providerTxn)
	if err != nil {
		log.Printf("webhook: loading transaction for order %d: %v", orderCode, err)
		return
	}
	if txn == nil {
		log.Printf("webhook: transaction not found for order %d", orderCode)
		return
	}
	if txn.Status == db_models.TxnStatusPaid {
		return
	}

	email := emailFromMetadata(txn.Metadata)
	if email == "" {
		// Fallback: resolve through the transaction's account record.
		account, err := p.accounts.FindById(ctx, txn.AccountID.String())
		if err != nil || account == nil {
			log.Printf("webhook: no identity for order %d", orderCode)
			return
		}
		email = account.Email
	}

	now := time.Now().Unix()
	if err := p.txns.UpdateFields(ctx, txn.ID.String(), map[string]interface{}{
		"status":  db_models.TxnStatusPaid,
		"paid_at": now,
	}); err != nil {
		log.Printf("webhook: marking order %d paid: %v", orderCode, err)
		return
	}

	if err := p.accounts.SetPremiumByEmail(ctx, email); err != nil {
		log.Printf("webhook: setting premium for %s (order %d): %v", email, orderCode, err)
	}
}

func emailFromMetadata(metadata []byte) string {
	if len(metadata) == 0 {
		return ""
	}
	var m struct {
		UserEmail string `json:"user_email"`
	}
	if err := json.Unmarshal(metadata, &m); err != nil {
		return ""
	}
	return m.UserEmail
}
