// Package scorer ranks the eligible next speakers for a boardroom turn.
//
// The score for each candidate is the sum of three independent signals read
// from the turn ledger, with weights that shift by session phase:
//
//   - an unspoken boost for agents who have not yet taken a turn, strongest
//     in the opening so every voice is heard early;
//   - a fairness penalty that grows with an agent's turn count, pushing
//     speaking frequency toward uniform over a long session;
//   - a mention boost for agents addressed recently, decaying by half for
//     each turn since the mention, strongest in the wrap-up so the most
//     relevant agents conclude.
//
// The scorer only ranks. Whether the caller picks the top candidate, samples
// from the top N, or shows the ranking to a moderator is selection policy
// and lives outside this package (see the session package's selectors).
package scorer
