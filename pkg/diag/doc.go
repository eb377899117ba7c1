// Package diag carries configuration diagnostics produced while validating:
// constraints attached to values of the wrong type, cycles and depth limits
// hit by the structural walker.
//
// Diagnostics are not validation failures. They never end up in the
// violation list; instead they are reported to a Sink that the caller
// injects. The package ships a slog backed sink for production use, an
// in-memory Collector for tests, Discard, and Multi for fan-out.
//
// # Usage
//
//	sink := diag.NewLogSink(log)
//	v := validator.New(provider, validator.WithSink(sink))
//
//	// in tests
//	var c diag.Collector
//	v := validator.New(provider, validator.WithSink(&c))
//	v.Validate(form)
//	assert.Equal(t, []string{"AnyOf annotation can be only with String type. Problem with: age"}, c.Messages())
package diag
