// Package types defines the shared error vocabulary used by every layer of
// datakit. All failures surface as a *Error carrying a stable ErrorCode, so
// callers branch on the code instead of matching message strings:
//
//	ds, err := datakit.LoadCSVData("iris.csv", opts)
//	if types.IsCode(err, types.ErrTargetNotFound) {
//	    // the requested label column does not exist
//	}
//
// Errors are terminal: no layer retries or recovers, every failure propagates
// unchanged to the caller of the entry point that triggered it.
package types
