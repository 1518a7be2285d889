package payment_service_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"lessonhub/internal/api/controllers"
	"lessonhub/internal/repositories"
	"lessonhub/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, providePaymentService, providePaymentController,
)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

// providePaymentService returns an error when the payOS credentials are
// missing or malformed, so a misconfigured deployment fails at startup
// instead of panicking on the first payments request.
func providePaymentService(
	accountRepo repositories.AccountRepository,
	txnRepo repositories.TransactionRepositoryInterface,
) (services.PaymentService, error) {
	amount, err := strconv.ParseInt(os.Getenv("PREMIUM_PRICE_MINOR"), 10, 64)
	if err != nil {
		amount = 4900
	}
	currency := os.Getenv("PREMIUM_CURRENCY")
	if currency == "" {
		currency = "USD"
	}

	cfg := services.PayOSConfig{
		ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:       os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
		ReturnURL:    os.Getenv("PAYMENT_RETURN_URL"),
		CancelURL:    os.Getenv("PAYMENT_CANCEL_URL"),
		ProviderName: "payos",
		AmountMinor:  amount,
		Currency:     currency,
	}

	return services.NewPaymentService(accountRepo, txnRepo, cfg)
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
