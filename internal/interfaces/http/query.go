package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/weimars70/conta-hencker/internal/application/dto"
)

// pageRequest lee page/limit de la query con los defaults del contrato.
func pageRequest(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	p.DefaultPage()
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// activoQuery lee el filtro activo; ausente = nil (sin filtrar).
func activoQuery(c *fiber.Ctx) *bool {
	v := c.Query("activo")
	if v == "" {
		return nil
	}
	b := v == "1" || strings.EqualFold(v, "true")
	return &b
}
