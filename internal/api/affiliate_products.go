package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type createAffiliateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	CommissionRate   *float64 `json:"commission_rate" binding:"required,min=0"`
	CommissionAmount *float64 `json:"commission_amount" binding:"omitempty,min=0"`
	URL              string   `json:"url" binding:"required"`
	Gravity          *int     `json:"gravity"`
	RefundRate       *float64 `json:"refund_rate" binding:"omitempty,min=0,max=100"`
	HasUpsells       bool     `json:"has_upsells"`
	IsRecurring      bool     `json:"is_recurring"`
}

func (r createAffiliateProductRequest) toDomain() domain.AffiliateProduct {
	return domain.AffiliateProduct{
		Name:             r.Name,
		Category:         r.Category,
		CommissionRate:   *r.CommissionRate,
		CommissionAmount: r.CommissionAmount,
		URL:              r.URL,
		Gravity:          r.Gravity,
		RefundRate:       r.RefundRate,
		HasUpsells:       r.HasUpsells,
		IsRecurring:      r.IsRecurring,
	}
}

func (h *Handler) ListAffiliateProducts(c *gin.Context) {
	products, err := h.stores.AffiliateProducts.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to fetch affiliate products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetAffiliateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.stores.AffiliateProducts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Product not found", "Failed to fetch affiliate product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateAffiliateProduct(c *gin.Context) {
	var req createAffiliateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid product data", err)
		return
	}

	product, err := h.stores.AffiliateProducts.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, err, "", "Failed to create affiliate product")
		return
	}
	c.JSON(http.StatusOK, product)
}
