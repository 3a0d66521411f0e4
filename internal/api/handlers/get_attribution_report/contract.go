package get_attribution_report

import (
	"context"

	attributionReport "github.com/schedfy/dashboard-service/internal/usecase/get_attribution_report"
)

type AttributionReportUseCase interface {
	Execute(ctx context.Context, req *attributionReport.Request) (*attributionReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
