// Package compliance holds the pure scoring rules: document freshness,
// document progress, strict task completion, the overall compliance score
// and the overview assembled from them. Nothing here performs I/O or reads
// the clock; callers pass "now".
package compliance
