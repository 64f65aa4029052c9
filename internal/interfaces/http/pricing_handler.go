package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carta-api/internal/application/dto"
	"github.com/jhoicas/carta-api/internal/application/usecase"
	"github.com/jhoicas/carta-api/internal/domain"
)

// PricingHandler expone la resolución de precios, la cotización de líneas y
// la carta pública. Son los endpoints que consumen el storefront y el POS.
type PricingHandler struct {
	quotes *usecase.QuoteUseCase
	menus  *usecase.MenuUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(quotes *usecase.QuoteUseCase, menus *usecase.MenuUseCase) *PricingHandler {
	return &PricingHandler{quotes: quotes, menus: menus}
}

// ResolvePrice godoc
// @Summary      Resolver precio de una variante u opción
// @Description  Devuelve el precio vigente para el contexto dado. available=false indica "sin precio", no es un error.
// @Tags         pricing
// @Produce      json
// @Param        id        path   string  true   "ID del ítem"
// @Param        variant   query  string  true   "Código de variante u opción"
// @Param        kind      query  string  false  "base | surcharge | deposit"  default(base)
// @Param        channel   query  string  false  "delivery | pickup | dinein"
// @Param        outlet    query  string  false  "ID de la sucursal"
// @Param        at        query  string  false  "Instante RFC3339; ausente = ahora"
// @Param        quantity  query  int     false  "Cantidad para escalas"  default(1)
// @Success      200  {object}  dto.ResolvedPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/price [get]
func (h *PricingHandler) ResolvePrice(c *fiber.Ctx) error {
	q := dto.PriceQuery{
		Variant:  c.Query("variant"),
		Kind:     c.Query("kind"),
		Channel:  c.Query("channel"),
		OutletID: c.Query("outlet"),
		Quantity: c.QueryInt("quantity", 1),
	}
	if raw := c.Query("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at debe ser RFC3339"})
		}
		q.At = &at
	}
	if q.Variant == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "variant es requerido"})
	}

	out, err := h.quotes.ResolvePrice(c.Params("id"), q)
	if err != nil {
		return h.pricingError(c, err)
	}
	return c.JSON(out)
}

// QuoteLine godoc
// @Summary      Cotizar una línea de pedido
// @Description  Calcula unit_price y total para variante + opciones × cantidad. available=false si alguna pieza queda sin precio.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del ítem"
// @Param        body  body  dto.QuoteLineRequest  true  "Línea a cotizar"
// @Success      200  {object}  dto.QuoteLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/quote [post]
func (h *PricingHandler) QuoteLine(c *fiber.Ctx) error {
	var in dto.QuoteLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Variant == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "variant es requerido"})
	}

	out, err := h.quotes.QuoteLine(c.Params("id"), in)
	if err != nil {
		return h.pricingError(c, err)
	}
	return c.JSON(out)
}

// GetMenu godoc
// @Summary      Carta pública de una empresa
// @Description  Ítems activos con precio "desde" (mínimo base entre variantes y opciones).
// @Tags         menu
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/menu [get]
func (h *PricingHandler) GetMenu(c *fiber.Ctx) error {
	out, err := h.menus.GetMenu(c.Params("companyId"))
	if err != nil {
		return h.pricingError(c, err)
	}
	return c.JSON(out)
}

// GetMenuPDF godoc
// @Summary      Carta de una empresa en PDF
// @Tags         menu
// @Produce      application/pdf
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/menu/pdf [get]
func (h *PricingHandler) GetMenuPDF(c *fiber.Ctx) error {
	pdf, err := h.menus.GenerateMenuPDF(c.Context(), c.Params("companyId"))
	if err != nil {
		return h.pricingError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="carta.pdf"`)
	return c.Send(pdf)
}

// pricingError traduce los errores de dominio a respuestas HTTP.
func (h *PricingHandler) pricingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
