// Package services holds domain logic that spans aggregates.
//
//   - WorkerSelector picks the worker that receives the next order (least-loaded first)
//   - MessageComposer renders the texts sent to workers and to the administrator
package services
