// Package errs defines the error types the API returns to clients.
//
// Every failure that reaches the HTTP boundary is converted into an
// HTTPError, so clients always receive the same JSON shape:
//
//	{ "mensagem": "...", "campos": [ { "campo": "...", "erro": "..." } ] }
package errs
