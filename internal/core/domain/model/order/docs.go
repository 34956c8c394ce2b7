// Package order models a customer's delivery order from intake to completion.
//
// An order is created pending, is attached to exactly one worker when it is assigned,
// and is completed by an administrator. Status only moves forward:
//
//	Pending ──> Assigned ──> Completed
//
// The worker reference is present exactly when the order is Assigned or Completed.
package order
