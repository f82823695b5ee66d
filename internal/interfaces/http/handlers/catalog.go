// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/WebDevchicka/Petal-Pine/internal/config"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/catalog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Service
	config  *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		config:  cfg,
	}
}

type sizeOption struct {
	Size  int             `json:"size"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type addOnOption struct {
	ID    string          `json:"id"`
	Price decimal.Decimal `json:"price"`
}

type productView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	FromPrice decimal.Decimal `json:"from_price"`
	Sizes     []sizeOption    `json:"sizes"`
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products := h.catalog.Products()

	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, h.productView(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": views,
			"add_ons":  h.addOnOptions(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    h.productView(product),
	})
}

func (h *CatalogHandler) productView(p *catalog.Product) productView {
	sizes := make([]sizeOption, 0, len(catalog.Sizes))
	for _, size := range catalog.Sizes {
		sizes = append(sizes, sizeOption{
			Size:  int(size),
			Label: size.Label(),
			Price: p.Prices[size],
		})
	}

	return productView{
		ID:        p.ID,
		Name:      p.Name,
		Image:     p.Image,
		FromPrice: p.FromPrice(),
		Sizes:     sizes,
	}
}

func (h *CatalogHandler) addOnOptions() []addOnOption {
	options := make([]addOnOption, 0, len(catalog.AddOns))
	for _, addOn := range catalog.AddOns {
		price, _ := h.catalog.AddOnPrice(addOn)
		options = append(options, addOnOption{
			ID:    string(addOn),
			Price: price,
		})
	}
	return options
}
