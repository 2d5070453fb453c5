// Package logger provides structured logging for faultkit using zerolog.
//
// The boundary handler is the single component that logs failures; this
// package gives it (and applications built on faultkit) leveled, structured
// output with the field names used across the module.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&logger.Config{Level: "debug"}, "boundary")
//	log.Error("failure handled", logger.Fields(logger.FieldCode, "BAD_CONFIG"))
package logger
