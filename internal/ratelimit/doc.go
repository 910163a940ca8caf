// Package ratelimit implements per-client sliding-window admission control.
//
// Each client identity owns a log of the timestamps of its admitted
// requests. A request is admitted when fewer than maxRequests entries fall
// inside the trailing window; rejected requests are not recorded, so a
// client that keeps hammering a saturated window does not extend its own
// lockout.
//
// Two backends are provided. SlidingWindow keeps logs in process memory and
// is the default. RedisSlidingWindow keeps one sorted set per identity in
// Redis so several replicas can share a budget.
package ratelimit
