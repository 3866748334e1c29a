// Package phone validates national phone numbers against per-country digit
// rules.
//
// Validation operates on digits only: Normalize strips spaces, punctuation and
// any other non-digit the user typed before a rule is applied. Every country
// code resolves to a rule; codes without a specific rule use DefaultRule
// (6 to 15 digits). Example numbers shown in error messages are curated
// separately from the rules and only serve as presentation aids.
package phone
