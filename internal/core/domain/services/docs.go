// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate or actor, such as the transition
// authorization policy.
package services
