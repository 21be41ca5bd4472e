// Package kernel contains shared value objects used across the fulfillment
// domain: UUID identifiers, geographic locations with distance calculation,
// and monetary amounts. All types are immutable and must be created through
// their constructor functions.
package kernel
