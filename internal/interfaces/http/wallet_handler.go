package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/wallet"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// WalletHandler maneja las tarjetas de fidelidad y su libro de puntos (protegido).
type WalletHandler struct {
	uc *wallet.UseCase
}

// NewWalletHandler construye el handler.
func NewWalletHandler(uc *wallet.UseCase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

// CreateCard godoc
// @Summary      Emitir tarjeta de fidelidad
// @Tags         wallet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWalletCardRequest  true  "holder, contact"
// @Success      201   {object}  dto.WalletCardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wallet/cards [post]
func (h *WalletHandler) CreateCard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateWalletCardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	card, err := h.uc.CreateCard(c.Context(), companyID, in)
	if err != nil {
		return walletError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWalletCardResponse(card))
}

// GetCard godoc
// @Summary      Obtener tarjeta por ID
// @Tags         wallet
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarjeta"
// @Success      200  {object}  dto.WalletCardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wallet/cards/{id} [get]
func (h *WalletHandler) GetCard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	card, err := h.uc.GetCard(c.Context(), companyID, id)
	if err != nil {
		return walletError(c, err)
	}
	return c.JSON(toWalletCardResponse(card))
}

// ListCards godoc
// @Summary      Listar tarjetas de la empresa
// @Tags         wallet
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.WalletCardListResponse
// @Router       /api/wallet/cards [get]
func (h *WalletHandler) ListCards(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit, offset := pageParams(c)
	cards, err := h.uc.ListCards(c.Context(), companyID, limit, offset)
	if err != nil {
		return walletError(c, err)
	}
	items := make([]dto.WalletCardResponse, 0, len(cards))
	for _, card := range cards {
		items = append(items, toWalletCardResponse(card))
	}
	return c.JSON(dto.WalletCardListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Credit godoc
// @Summary      Acreditar puntos a una tarjeta
// @Tags         wallet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarjeta"
// @Param        body  body  dto.WalletPointsRequest  true  "points > 0, reason"
// @Success      201   {object}  dto.WalletMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wallet/cards/{id}/credit [post]
func (h *WalletHandler) Credit(c *fiber.Ctx) error {
	return h.applyPoints(c, true)
}

// Debit godoc
// @Summary      Debitar puntos de una tarjeta
// @Tags         wallet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarjeta"
// @Param        body  body  dto.WalletPointsRequest  true  "points > 0, reason"
// @Success      201   {object}  dto.WalletMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wallet/cards/{id}/debit [post]
func (h *WalletHandler) Debit(c *fiber.Ctx) error {
	return h.applyPoints(c, false)
}

// Movements godoc
// @Summary      Libro de puntos de una tarjeta
// @Tags         wallet
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la tarjeta"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.WalletMovementResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/wallet/cards/{id}/movements [get]
func (h *WalletHandler) Movements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	limit, offset := pageParams(c)
	movs, err := h.uc.Movements(c.Context(), companyID, id, limit, offset)
	if err != nil {
		return walletError(c, err)
	}
	items := make([]dto.WalletMovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toWalletMovementResponse(m))
	}
	return c.JSON(items)
}

func (h *WalletHandler) applyPoints(c *fiber.Ctx, credit bool) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.WalletPointsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var (
		mov *entity.WalletMovement
		err error
	)
	if credit {
		mov, err = h.uc.Credit(c.Context(), companyID, userID, id, in)
	} else {
		mov, err = h.uc.Debit(c.Context(), companyID, userID, id, in)
	}
	if err != nil {
		return walletError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWalletMovementResponse(mov))
}

func walletError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarjeta no encontrada"})
	case errors.Is(err, domain.ErrInsufficientPoints):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_POINTS", Message: "saldo de puntos insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CARD_INACTIVE", Message: "la tarjeta no está activa"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toWalletCardResponse(card *entity.WalletCard) dto.WalletCardResponse {
	return dto.WalletCardResponse{
		ID:        card.ID,
		CompanyID: card.CompanyID,
		Holder:    card.Holder,
		Contact:   card.Contact,
		Points:    card.Points,
		Status:    card.Status,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

func toWalletMovementResponse(m *entity.WalletMovement) dto.WalletMovementResponse {
	return dto.WalletMovementResponse{
		ID:        m.ID,
		CardID:    m.CardID,
		Type:      m.Type,
		Points:    m.Points,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
