package logger

// Standard field key constants for structured logging.
const (
	FieldComponent    = "component"
	FieldCode         = "code"
	FieldLocale       = "locale"
	FieldIncidentID   = "incident_id"
	FieldCauseChain   = "cause_chain"
	FieldUserMessage  = "user_message"
	FieldDevMessage   = "dev_message"
	FieldOperation    = "operation"
	FieldSuccessCount = "success_count"
	FieldFailureCount = "failure_count"
	FieldError        = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("batch done", logger.Fields(logger.FieldSuccessCount, 9))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
