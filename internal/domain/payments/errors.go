package payments

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentExists        = errors.New("payment already exists for this booking")
	ErrInvalidState         = errors.New("booking must be pending to process payment")
	ErrNotSuccessfulPayment = errors.New("only successful payments can be refunded")
)
