package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across xmlprops.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Documents and output
	FieldDocument = "document"
	FieldPackage  = "package"
	FieldFileName = "file_name"
	FieldOutput   = "output"
	FieldDir      = "dir"

	// Variant
	FieldBuildType = "build_type"
	FieldFlavor    = "flavor"

	// Outcome
	FieldStatus = "status"
	FieldReason = "reason"
	FieldError  = "error"

	// Counts and timing
	FieldCount      = "count"
	FieldEmitted    = "emitted"
	FieldSkipped    = "skipped"
	FieldFailed     = "failed"
	FieldWorkers    = "workers"
	FieldDurationMS = "duration_ms"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	runner := pipeline.NewRunner(gen, workers, logger.ComponentLogger("pipeline"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// VariantFields returns the structured fields describing a build variant.
// An empty flavor is omitted.
func VariantFields(buildType, flavor string) []interface{} {
	fields := []interface{}{FieldBuildType, buildType}
	if flavor != "" {
		fields = append(fields, FieldFlavor, flavor)
	}
	return fields
}
