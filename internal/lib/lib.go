// Package lib groups small infrastructure clients that are not
// business logic themselves (email, and whatever comes next).
package lib
