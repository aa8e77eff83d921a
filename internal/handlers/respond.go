package handlers

import (
	"net/http"

	"order_manager/internal/apierror"

	"github.com/gin-gonic/gin"
)

// renderError writes the {message, code} envelope. Authorization failures map
// to 401, everything else surfaces as 400 so clients branch on the code field.
func renderError(c *gin.Context, err error) {
	apiErr := apierror.Wrap(err, apierror.CodeInternal)
	status := http.StatusBadRequest
	if apiErr.Code == apierror.CodeUnauthorized {
		status = http.StatusUnauthorized
	}
	c.JSON(status, apiErr)
}

func renderBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, apierror.New(err.Error(), apierror.CodeInvalidInputs))
}
