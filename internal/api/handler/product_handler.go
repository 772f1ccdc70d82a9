package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/facetime/facetime-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the catalog, optionally filtered by skin type. Products
// tagged for every skin type are always included in a filtered listing.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        skinType  query     string  false  "Skin type filter"
// @Success      200       {array}   productResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context(), c.QueryParam("skinType"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}
