// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs the (here intentionally
// small) business operations, and calls repository methods to check
// the data it needs.
package service
