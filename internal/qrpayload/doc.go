// Package qrpayload implements the deterministic mapping from structured
// form input to a single QR-encodable payload string, and the inverse
// parsing of display links back into parameters.
//
// Two encoding strategies exist. Self-contained local protocol strings
// (vCard, WIFI: configuration, SMSTO: URI, raw URL) are consumed directly
// by the scanning device. Deep links point at this application's /display
// route and carry the content as query parameters; the producer and the
// display view must agree exactly on the parameter schema defined here.
package qrpayload
