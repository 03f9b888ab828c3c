package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-intel/internal/application/dto"
	"github.com/jhoicas/inventory-intel/internal/application/insights"
)

// CatalogHandler maneja la búsqueda de productos y el sugeridor de categorías.
type CatalogHandler struct {
	uc *insights.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *insights.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda léxica de productos
// @Description  Rankea el catálogo contra la consulta (tolerante a tildes y
//               mayúsculas). Consulta vacía lista todo sin rankear.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "Texto de búsqueda"
// @Param        category  query  string  false  "Restringir a una categoría exacta"
// @Success      200  {object}  dto.SearchResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	resp, err := h.uc.Search(c.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Autocomplete godoc
// @Summary      Autocompletado de descripciones y códigos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  true   "Prefijo parcial"
// @Param        max  query  int     false  "Máximo de sugerencias (default 10)"
// @Success      200  {object}  dto.AutocompleteResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/autocomplete [get]
func (h *CatalogHandler) Autocomplete(c *fiber.Ctx) error {
	resp, err := h.uc.Autocomplete(c.Context(), c.Query("q"), c.QueryInt("max"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// SuggestCategory godoc
// @Summary      Sugerencia de categoría por descripción
// @Description  Clasificador explicable por palabras clave; lista vacía = sin
//               evidencia suficiente.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestCategoryRequest  true  "Descripción a clasificar"
// @Success      200  {object}  dto.SuggestCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/suggest [post]
func (h *CatalogHandler) SuggestCategory(c *fiber.Ctx) error {
	var req dto.SuggestCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	resp, err := h.uc.SuggestCategory(req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
