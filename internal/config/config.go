package config

const (
	DefaultGatewayPort = 8081
	DefaultClasifPort  = 7143

	// Upload limit for multipart statement files.
	UploadMaxBytes = 32 << 20

	// Rows included per sheet in preview responses.
	PreviewRows = 20

	// Report emission: widths sampled over the first N values, capped.
	WidthSampleRows = 1000
	MaxColWidth     = 60

	ReportFilename = "movimientos_clasificados.xlsx"
	ReportMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	DateNumFmt  = "dd/mm/yyyy"
	MoneyNumFmt = "#,##0.00"
)
