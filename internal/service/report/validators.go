package report

import (
	"fmt"
	"strings"

	"reporting/internal/entities"
)

func validateRunRequest(id int, params entities.ReportParams) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReportID, id)
	}
	if params.CustomerName != nil && strings.TrimSpace(*params.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is blank", ErrInvalidParams)
	}
	if params.AsOf != nil && params.AsOf.IsZero() {
		return fmt.Errorf("%w: as-of timestamp is zero", ErrInvalidParams)
	}
	return nil
}
