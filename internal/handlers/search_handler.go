package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/dto"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/models"
)

type SearchHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSearchHandler(db *gorm.DB, log *zap.Logger) *SearchHandler {
	return &SearchHandler{db: db, log: log}
}

// Search matches q case-insensitively against names and descriptions
// (bios for barbers). The three catalogs are queried concurrently.
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		httperr.BadRequest(c, "Search query required")
		return
	}

	like := "%" + strings.ToLower(q) + "%"

	var (
		services []models.Service
		staff    []models.Staff
		products []models.Product
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	db := h.db.WithContext(ctx)

	g.Go(func() error {
		return db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
			Order("featured DESC, name ASC").
			Find(&services).Error
	})
	g.Go(func() error {
		return db.Where("LOWER(name) LIKE ? OR LOWER(bio) LIKE ?", like, like).
			Order("featured DESC, name ASC").
			Find(&staff).Error
	})
	g.Go(func() error {
		return db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
			Order("featured DESC, name ASC").
			Find(&products).Error
	})

	if err := g.Wait(); err != nil {
		httperr.Respond(c, h.log, err, "Search failed")
		return
	}

	res := dto.SearchResult{
		Services: services,
		Barbers:  dto.BarbersFrom(staff),
		Products: products,
	}
	if res.Services == nil {
		res.Services = []models.Service{}
	}
	if res.Products == nil {
		res.Products = []models.Product{}
	}

	httpresp.OK(c, res)
}
