// Package httputil provides HTTP helpers for textframe clients.
//
// [Retry] wraps a request with exponential backoff. Only errors wrapped in
// [RetryableError] are retried, so callers decide which failures are
// transient (connection errors, 5xx responses) and which are final (4xx).
//
//	err := httputil.Retry(ctx, 3, 100*time.Millisecond, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return nil
//	})
package httputil
