// Package display is the consumer side of the QR link scheme. It resolves
// the presentation variant for a content type, reconstructs a renderable
// view model from parsed link parameters, and drives the menu viewing
// session state machine.
package display
