package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/internal/catalog"
	"github.com/southlake-academy/admin-api/internal/models"
	"github.com/southlake-academy/admin-api/internal/registrations"
	"github.com/southlake-academy/admin-api/pkg/response"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RegistrationSource is the read surface the export handlers need.
type RegistrationSource interface {
	List(ctx context.Context) ([]models.Registration, error)
	ListByCategory(ctx context.Context, category string) ([]models.Registration, error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
}

// Handler handles document export HTTP endpoints.
type Handler struct {
	source RegistrationSource
	logger *zap.Logger
}

// NewHandler creates an export handler.
func NewHandler(source RegistrationSource, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{source: source, logger: logger}
}

func categoryTitle(slug string) string {
	if slug == registrations.CategoryAnnual {
		return "Annual Registration"
	}
	if cat, ok := catalog.Lookup(slug); ok {
		return cat.Title
	}
	return slug
}

// RegistrationPDF handles GET /api/registrations/:category/:id/pdf. For a
// catalog category it renders that category's form submissions; for the
// annual pseudo-category it renders the registration summary table.
func (h *Handler) RegistrationPDF(c *gin.Context) {
	slug := c.Param("category")
	if !registrations.ValidCategory(slug) {
		response.NotFound(c, "unknown category")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid registration id")
		return
	}

	reg, err := h.source.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("load registration failed", zap.Error(err), zap.Int64("id", id))
		response.Internal(c, "failed to load registration")
		return
	}
	if reg == nil {
		response.NotFound(c, "registration not found")
		return
	}

	title := categoryTitle(slug)
	var doc []byte
	if slug == registrations.CategoryAnnual {
		doc, err = BuildSummaryPDF("Enrolled Student Details", RegistrationRows(reg))
	} else {
		doc, err = BuildFormsPDF(title, reg.RegistrationID, FormSections(reg.FormsFor(slug)))
	}
	if err != nil {
		h.logger.Error("build pdf failed", zap.Error(err), zap.Int64("id", id), zap.String("category", slug))
		response.Internal(c, "failed to build pdf")
		return
	}

	filename := fmt.Sprintf("%s_Registration_%d.pdf", sanitizeFilename(title), reg.RegistrationID)
	attach(c, filename)
	c.Data(200, contentTypePDF, doc)
}

// Spreadsheet handles GET /api/exports/:category. It downloads the
// currently filtered registration list (?q= uses the same pure filter as
// the list view) as a one-sheet workbook.
func (h *Handler) Spreadsheet(c *gin.Context) {
	slug := c.Param("category")
	if !registrations.ValidCategory(slug) {
		response.NotFound(c, "unknown category")
		return
	}

	var (
		list []models.Registration
		err  error
	)
	if slug == registrations.CategoryAnnual {
		list, err = h.source.List(c.Request.Context())
	} else {
		list, err = h.source.ListByCategory(c.Request.Context(), slug)
	}
	if err != nil {
		h.logger.Error("load registrations failed", zap.Error(err), zap.String("category", slug))
		response.Internal(c, "failed to load registrations")
		return
	}

	list = registrations.Filter(list, c.Query("q"))
	doc, err := BuildSpreadsheet(SheetEnrolled, SpreadsheetHeader, SpreadsheetRows(list))
	if err != nil {
		h.logger.Error("build spreadsheet failed", zap.Error(err), zap.String("category", slug))
		response.Internal(c, "failed to build spreadsheet")
		return
	}

	attach(c, "Enrolled_Students.xlsx")
	c.Data(200, contentTypeXLSX, doc)
}

func attach(c *gin.Context, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
}

func sanitizeFilename(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
	return strings.Trim(s, "_")
}
