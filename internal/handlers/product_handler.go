package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

const (
	msgProductNotFound     = "Product not found"
	msgProductRequired     = "Name, description, and price are required"
	msgProductNotPositive  = "Price must be a positive number"
	defaultProductCategory = "Tools"
	defaultProductBrand    = "BarberCraft"
	defaultStockCount      = 10
)

type ProductHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewProductHandler(db *gorm.DB, audit *audit.Dispatcher, log *zap.Logger) *ProductHandler {
	return &ProductHandler{db: db, audit: audit, log: log}
}

// --------- Helpers ---------

func validateProduct(req dto.ProductRequest) error {
	if req.Name == "" || req.Description == "" || req.Price == nil || *req.Price == 0 {
		return httperr.Validation(msgProductRequired)
	}
	if *req.Price < 0 {
		return httperr.Validation(msgProductNotPositive)
	}
	if req.StockCount != nil && *req.StockCount < 0 {
		return httperr.Validation("Stock count cannot be negative")
	}
	return nil
}

// applyProduct copies req onto p. Stock fields left out of the body keep
// p's current values, which are the defaults for a new product.
func applyProduct(p *models.Product, req dto.ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = *req.Price
	p.Category = req.Category
	if p.Category == "" {
		p.Category = defaultProductCategory
	}
	p.Brand = req.Brand
	if p.Brand == "" {
		p.Brand = defaultProductBrand
	}
	p.Image = req.Image
	p.Featured = req.Featured
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if req.StockCount != nil {
		p.StockCount = *req.StockCount
	}
}

func (h *ProductHandler) record(c *gin.Context, action string, id uint, meta any) {
	h.audit.Dispatch(audit.Event{
		UserID:   uintPtr(middleware.UserID(c)),
		Action:   action,
		Entity:   "product",
		EntityID: uintPtr(id),
		Metadata: meta,
	})
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.WithContext(c.Request.Context()).
		Order("featured DESC, name ASC").
		Find(&products).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to fetch products")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, msgProductNotFound)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgProductNotFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to fetch product")
		return
	}

	httpresp.OK(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateProduct(req); err != nil {
		httperr.Respond(c, h.log, err, "Failed to create product")
		return
	}

	product := models.Product{
		InStock:    true,
		StockCount: defaultStockCount,
		Rating:     4.5,
	}
	applyProduct(&product, req)

	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to create product")
		return
	}

	h.record(c, audit.ActionProductCreated, product.ID, map[string]any{"name": product.Name})
	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgProductNotFound)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	var product models.Product
	if err := h.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, msgProductNotFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to update product")
		return
	}

	if err := validateProduct(req); err != nil {
		httperr.Respond(c, h.log, err, "Failed to update product")
		return
	}
	applyProduct(&product, req)

	if err := h.db.WithContext(ctx).Save(&product).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to update product")
		return
	}

	h.record(c, audit.ActionProductUpdated, product.ID, nil)
	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgProductNotFound)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Product{}, id)
	if res.Error != nil {
		httperr.Respond(c, h.log, res.Error, "Failed to delete product")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, msgProductNotFound)
		return
	}

	h.record(c, audit.ActionProductDeleted, id, nil)
	httpresp.Message(c, "Product deleted successfully")
}
