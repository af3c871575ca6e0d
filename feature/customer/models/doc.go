// Package models defines the customer record, the registration payload and the
// partial-update change request.
//
// Change requests use Optional[T] per field so "not mentioned" is explicit.
// A JSON null decodes to absent: null has always meant "leave unchanged" for
// this API, so a field cannot be cleared through an update.
package models
