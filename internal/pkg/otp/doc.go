// Package otp provides an in-memory registry of short-lived one-time
// passcodes keyed by email address.
//
// This is used for email verification and account recovery flows: generate a
// 6-digit code for an address, deliver it out of band, then check it with
// IsValid (repeatable) or Validate (consumes the code on success). Codes are
// never persisted; a process restart clears all outstanding codes.
package otp
