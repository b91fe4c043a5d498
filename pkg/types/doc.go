// Package types defines the entity types, enumerations, input and change
// structs, sentinel errors, and the Storage and Config contracts for the
// larder inventory system.
package types
