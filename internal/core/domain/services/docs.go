// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates. Services here hold policy knobs only,
// never persistent state, and never touch storage directly.
package services
