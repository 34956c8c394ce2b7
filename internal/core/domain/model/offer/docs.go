// Package offer models the promotional offers shown on the public storefront.
//
// Offers are managed by administrators. An offer is visible to customers while it is
// active and its expiry, if any, lies in the future.
package offer
