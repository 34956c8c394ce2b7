// Package worker models the delivery staff that orders are routed to.
//
// A worker carries the load state the selector ranks on: the lifetime number of orders
// assigned to them and the instant of the latest assignment. The count only grows; deleting
// or completing an order never gives a slot back. Every persisted change bumps Version so
// concurrent writers can detect each other.
package worker
