package logging

import "log/slog"

// Attribute keys. Handlers, repositories and pagers share them so a single
// request can be followed across layers.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"

	FieldProvider  = "provider"
	FieldEndpoint  = "endpoint"
	FieldErrorKind = "error_kind"

	FieldPager  = "pager"
	FieldCursor = "cursor"
	FieldCount  = "count"
	FieldQuery  = "query"
	FieldTeamID = "team_id"
)

// identity returns the attributes stamped on every record of a logger.
func identity(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
