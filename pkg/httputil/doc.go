// Package httputil provides HTTP utilities for remote planfile access.
//
// # Retry
//
// [Retry] wraps an operation with automatic retry for transient failures.
// Only errors wrapped in [RetryableError] are retried; everything else is
// returned immediately, so callers decide which failures are worth another
// attempt (network errors and 5xx responses, typically):
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %s", resp.Status)}
//	    }
//	    return handle(resp)
//	})
//
// The delay doubles after each failed attempt, and the context cancels the
// wait between attempts.
//
// # Configuration
//
// [RetryWithBackoff] uses the defaults (3 attempts, 1 second base delay);
// [Retry] takes both as parameters.
package httputil
