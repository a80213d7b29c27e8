package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"vg-ai-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks struct tags and reports violations as a single
// InvalidArgument error, so they are rejected before any upstream call.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return apperror.NewInvalidArgument("validation failed: " + strings.Join(fields, ", "))
	}
	return apperror.NewInvalidArgument(err.Error())
}
