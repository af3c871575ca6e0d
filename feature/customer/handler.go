package customer

import (
	"errors"
	"strconv"

	"customer-service/core/logger"
	"customer-service/feature/customer/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for customers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the customer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/v1/customers")
	group.Get("/", h.HandleListCustomers)
	group.Get("/:customerId", h.HandleGetCustomer)
	group.Post("/", h.HandleAddCustomer)
	group.Put("/:customerId", h.HandleUpdateCustomer)
	group.Delete("/:customerId", h.HandleDeleteCustomer)
}

// HandleListCustomers returns every customer.
// @Summary List Customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/customers [get]
func (h *Handler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.ListCustomers(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(customers)
}

// HandleGetCustomer returns a single customer.
// @Summary Get Customer
// @Tags customers
// @Produce json
// @Param customerId path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/v1/customers/{customerId} [get]
func (h *Handler) HandleGetCustomer(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return h.fail(c, err)
	}

	customer, err := h.service.GetCustomer(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(customer)
}

// HandleAddCustomer registers a new customer.
// @Summary Add Customer
// @Tags customers
// @Accept json
// @Param customer body models.Registration true "Customer"
// @Success 201
// @Failure 400 {object} map[string]string "Invalid Body"
// @Failure 409 {object} map[string]string "Email Already Taken"
// @Router /api/v1/customers [post]
func (h *Handler) HandleAddCustomer(c *fiber.Ctx) error {
	var reg models.Registration
	if err := c.BodyParser(&reg); err != nil {
		return h.fail(c, invalid("invalid request body: %v", err))
	}

	if err := h.service.AddCustomer(c.Context(), reg); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateCustomer applies a partial update.
// @Summary Update Customer
// @Description Absent or null fields are left unchanged. A request that changes nothing is rejected.
// @Tags customers
// @Accept json
// @Produce json
// @Param customerId path int true "Customer ID"
// @Param change body models.ChangeRequest true "Fields to change"
// @Success 200 {object} models.Customer
// @Failure 400 {object} map[string]string "No Changes or Invalid Body"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Email Already Taken"
// @Router /api/v1/customers/{customerId} [put]
func (h *Handler) HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return h.fail(c, err)
	}

	var change models.ChangeRequest
	if err := c.BodyParser(&change); err != nil {
		return h.fail(c, invalid("invalid request body: %v", err))
	}

	updated, err := h.service.UpdateCustomer(c.Context(), id, change)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteCustomer removes a customer.
// @Summary Delete Customer
// @Tags customers
// @Param customerId path int true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/v1/customers/{customerId} [delete]
func (h *Handler) HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.service.RemoveCustomer(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		l.Error("Customer request failed", zap.Error(err))
	} else {
		l.Warn("Customer request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrNoOp), errors.Is(err, ErrInvalid):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func customerID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("customerId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("invalid customer id %q", raw)
	}
	return id, nil
}
