// Package services contains stateless domain services that implement
// business rules spanning more than one aggregate. TransitionPolicy owns
// the order lifecycle decisions and the coupled driver-release rule.
package services
