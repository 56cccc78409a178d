package transaction

import (
	txsvc "github.com/amirasaad/banksim/pkg/service/transaction"
	"github.com/amirasaad/banksim/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers HTTP routes for transfers and transaction history.
//
// Routes:
//   - POST /transaction              : Execute a transfer.
//   - GET  /transaction              : The most recent transactions.
//   - GET  /transaction/account/:id  : Transactions sent or received by an account.
func Routes(r fiber.Router, txSvc *txsvc.Service) {
	r.Post("/transaction", MakeTransfer(txSvc))
	r.Get("/transaction", ListLastTransactions(txSvc))
	r.Get("/transaction/account/:id", ListAccountTransactions(txSvc))
}

// MakeTransfer returns a Fiber handler executing a transfer between two accounts.
// @Summary Transfer money
// @Description Moves the amount from sender to receiver. Both accounts must be active and verified; SAVINGS accounts only transfer between accounts of the same user.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 201 {object} common.Response "Transfer is successfully completed"
// @Failure 400 {object} common.ProblemDetails "Invalid transfer"
// @Failure 403 {object} common.ProblemDetails "Account not verified or ownership rule"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient balance"
// @Router /v1/transaction [post]
func MakeTransfer(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		tx, err := txSvc.MakeTransfer(c.UserContext(), input.ToTransferCommand())
		if err != nil {
			log.Warnf("Transfer failed: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer is successfully completed", ToTransactionDTO(tx))
	}
}

// ListLastTransactions returns a Fiber handler listing the most recent transactions.
// @Summary Last transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} common.Response "Transactions are successfully retrieved"
// @Router /v1/transaction [get]
func ListLastTransactions(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := txSvc.ListLastTransactions(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions are successfully retrieved", ToTransactionDTOs(txs))
	}
}

// ListAccountTransactions returns a Fiber handler listing one account's transactions.
// @Summary Account transactions
// @Tags transactions
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Transactions are successfully retrieved"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /v1/transaction/account/{id} [get]
func ListAccountTransactions(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		txs, err := txSvc.ListByAccount(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions are successfully retrieved", ToTransactionDTOs(txs))
	}
}
