package report

import "errors"

var (
	ErrInvalidReportID = errors.New("invalid report id")
	ErrReportNotFound  = errors.New("report not found")
	ErrInvalidParams   = errors.New("invalid report params")
)
