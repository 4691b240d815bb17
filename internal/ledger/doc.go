// Package ledger tracks who has spoken and who has been addressed over the
// course of a boardroom session.
//
// A Ledger holds one entry per participant: how many turns the agent has
// taken and the most recent turn on which its name was mentioned. The
// ledger is a persistent value — every update returns a new Ledger and
// leaves the input untouched. That makes replaying a turn trivial (keep the
// old value) and lets concurrent sessions each own an independent ledger
// with no locking.
//
// The entry set is fixed at construction: the set of agent IDs equals the
// session roster for the ledger's whole lifetime. Updates referencing any
// other ID fail with UnknownAgent.
package ledger
