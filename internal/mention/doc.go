// Package mention scans message text for references to known agents.
//
// An agent is mentioned when its full display name appears anywhere in the
// text, case-insensitively. Matching is exact-phrase containment rather
// than token-by-token, so "Alexander" in unrelated prose never matches an
// agent named "Alex".
//
// When one agent's display name is a substring of another's ("Marcus" vs
// "Marcus Aurelius"), the longer name wins: text claimed by a longer match
// is not available to a shorter one, while a separate occurrence of the
// shorter name elsewhere in the text still counts. See Extract for the
// exact rule.
package mention
