// Package errors provides structured error types for better observability
// and programmatic error handling across the probe.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSensorFailure,
//	    "failed to read 1-wire sensors",
//	    cause,
//	    map[string]interface{}{
//	        "command": "digitemp_DS9097",
//	        "config":  rcPath,
//	    },
//	)
package errors
