// Package pagelens extracts UI elements from a web page's rendered markup
// and disambiguates elements that share the same human-readable identifier,
// producing enough context to describe each element uniquely in natural
// language (e.g. for generated test scenarios).
//
// This package contains domain types, interfaces, and the uniqueness
// resolution algorithm following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g. goquery/, rod/, sqlite/, gemini/).
package pagelens
