// Logger Helpers
//
// Silence service logging in tests:
//
//	logger := helpers.DiscardLogger()
//
// Capture structured output for assertions:
//
//	logger, buf := helpers.CaptureLogger()
//	// ... exercise code ...
//	assert.Contains(t, buf.String(), `"msg":"application created"`)
package helpers
