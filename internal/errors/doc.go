// Package errors provides structured error handling for the danddy client.
//
// Every failed backend call carries exactly one code from the transport
// taxonomy (invalid URL, network, unauthorized, client, server, decoding);
// local validation failures use CodeInvalidArgument. Errors wrap causes
// and can carry metadata for display.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Unauthorized("session expired")
//	err := errors.ClientErrorf("client error: %d", status)
//
// Wrapping errors:
//
//	if err := store.Save(token); err != nil {
//	    return errors.Wrap(err, "failed to persist token")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsUnauthorized(err) {
//	    // force the session back to anonymous
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateMin("level", input.Level, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
