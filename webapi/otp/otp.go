package otp

import (
	otpsvc "github.com/amirasaad/banksim/pkg/service/otp"
	accountweb "github.com/amirasaad/banksim/webapi/account"
	"github.com/amirasaad/banksim/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the OTP verification route.
func Routes(r fiber.Router, otpSvc *otpsvc.Service) {
	r.Post("/otp", VerifyOtp(otpSvc))
}

// VerifyOtp returns a Fiber handler confirming an account with its one-time code.
// @Summary Verify an account
// @Description Confirms the code sent by SMS after account creation. A code can be used once.
// @Tags otp
// @Accept json
// @Produce json
// @Param request body VerifyOtpRequest true "OTP handle and code"
// @Success 200 {object} common.Response "Account is successfully verified"
// @Failure 400 {object} common.ProblemDetails "Invalid request or wrong code"
// @Failure 404 {object} common.ProblemDetails "Unknown or expired code"
// @Router /v1/otp [post]
func VerifyOtp(otpSvc *otpsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[VerifyOtpRequest](c)
		if input == nil {
			return err
		}
		a, err := otpSvc.Verify(c.UserContext(), input.ToOtpVerify())
		if err != nil {
			log.Warnf("OTP verification failed: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to verify account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account is successfully verified", accountweb.ToAccountDTO(a))
	}
}
