package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Kamaludyn/career-connect-backend/internal/service"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	res, err := h.search.Search(c.Context(), c.Query("q"), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}
