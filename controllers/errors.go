package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	mysql "github.com/go-sql-driver/mysql"

	"travel-backend/services"
)

// respondValidationError turns binding failures into a field-level error map:
// {"error":{"code","message","fields":{"rating":"must be at most 5"}}}.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.validation",
				"message": "one or more fields are invalid",
				"fields":  fields,
			},
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{
			"code":    "error.invalidPayload",
			"message": err.Error(),
		},
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in the form " + fe.Param()
	default:
		return "is invalid"
	}
}

// respondServiceError maps service errors onto HTTP statuses. Foreign key
// violations from MySQL (errno 1452) become 400s rather than 500s.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"code": "error.notFound", "message": "record not found"},
		})
	case errors.Is(err, services.ErrListingNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.unknownListing", "message": "referenced listing does not exist"},
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.unknownUser", "message": "referenced user does not exist"},
		})
	default:
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == 1452 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "error.unknownReference", "message": "referenced record does not exist"},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "error.internal", "message": err.Error()},
		})
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidId", "message": fmt.Sprintf("invalid id %q", c.Param("id"))},
		})
		return 0, false
	}
	return uint(id), true
}
