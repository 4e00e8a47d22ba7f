package ports

// DispatchMetrics counts dispatcher outcomes per operation name.
type DispatchMetrics interface {
	RecordSuccess(operation string)
	RecordInvalid(operation string)
	RecordFailure(operation string)
}
