// Package mail abstracts outbound email delivery behind a small interface.
//
// The application composes provider-agnostic Messages and hands them to a
// Mail implementation; only SMTP is implemented today.
package mail
