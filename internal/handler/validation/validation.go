package validation

import (
	"sync"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/domain/booking"
	"cowork-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the domain enum rules on gin's binding engine. Safe to
// call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin binding engine is not go-playground/validator")
			return
		}
		rules := map[string]validator.Func{
			"paymentmethod":  isPaymentMethod,
			"approvaltype":   isApprovalType,
			"approvalstatus": isApprovalStatus,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = errs.Wrapf(err, "register %s", tag)
				return
			}
		}
	})
	return registerErr
}

func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}

func isPaymentMethod(fl validator.FieldLevel) bool {
	return booking.PaymentMethod(fl.Field().String()).IsValid()
}

func isApprovalType(fl validator.FieldLevel) bool {
	return approval.RequestType(fl.Field().String()).IsValid()
}

func isApprovalStatus(fl validator.FieldLevel) bool {
	return approval.Status(fl.Field().String()).IsValid()
}
