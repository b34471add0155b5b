package interfaces

import "homeservices_crm/internal/domain/analytics"

type IWorkbookExporter interface {
	Export(r analytics.Report) ([]byte, error)
}
