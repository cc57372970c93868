package controller

import (
	"net/http"
	"strconv"

	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/falconakhil/CompeteHub/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// respondError maps a service error to an HTTP response. Internal errors are
// logged with detail but reported to the client with a generic message.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// pageParams reads page/page_size query parameters and converts them to an
// offset/limit pair.
func pageParams(c *gin.Context) (page, pageSize, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
