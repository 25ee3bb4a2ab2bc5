// Package protocol owns the wire contract shared by every cluster role.
//
// Ownership boundary:
// - channel / object-id / zone-id aliases and reserved channels
// - the closed message-type enumeration and its resolution
package protocol
