package account

import (
	accountsvc "github.com/amirasaad/banksim/pkg/service/account"
	"github.com/amirasaad/banksim/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers HTTP routes for account-related operations.
//
// Routes:
//   - POST   /account             : Create an unverified account and issue its OTP.
//   - GET    /account             : List all accounts.
//   - GET    /account/active      : List ACTIVE accounts.
//   - GET    /account/:id         : Retrieve one account.
//   - DELETE /account/delete/:id  : Soft-delete an account.
func Routes(r fiber.Router, accountSvc *accountsvc.Service) {
	r.Post("/account", CreateAccount(accountSvc))
	r.Get("/account", ListAccounts(accountSvc))
	r.Get("/account/active", ListActiveAccounts(accountSvc))
	r.Get("/account/:id", GetAccount(accountSvc))
	r.Delete("/account/delete/:id", DeleteAccount(accountSvc))
}

// CreateAccount returns a Fiber handler for creating a new account.
// @Summary Create a new account
// @Description Creates an unverified account and sends a one-time code to its phone number. Returns the OTP handle used to verify it.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account is successfully created with non verified"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 422 {object} common.ProblemDetails "Initial balance not positive"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /v1/account [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		handle, err := accountSvc.CreateNewAccount(c.UserContext(), input.ToAccountCreate())
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account is successfully created with non verified", handle)
	}
}

// ListAccounts returns a Fiber handler listing every account.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts are successfully retrieved"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /v1/account [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListAllAccount(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts are successfully retrieved", ToAccountDTOs(accounts))
	}
}

// ListActiveAccounts returns a Fiber handler listing ACTIVE accounts.
// @Summary List active accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Active accounts are successfully retrieved"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /v1/account/active [get]
func ListActiveAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListAllActiveAccount(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list active accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list active accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Active accounts are successfully retrieved", ToAccountDTOs(accounts))
	}
}

// GetAccount returns a Fiber handler retrieving one account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Account is successfully retrieved"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /v1/account/{id} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := accountSvc.RetrieveByID(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to retrieve account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account is successfully retrieved", ToAccountDTO(a))
	}
}

// DeleteAccount returns a Fiber handler soft-deleting an account.
// @Summary Delete an account
// @Description Marks the account DELETED. The record is kept.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Account is successfully deleted"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /v1/account/delete/{id} [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := accountSvc.DeleteAccount(c.UserContext(), id)
		if err != nil {
			log.Errorf("Failed to delete account %s: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account is successfully deleted", ToAccountDTO(a))
	}
}
