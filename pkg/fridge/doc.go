// Package fridge implements the authoritative in-process state store for
// shelves, items, and condiments, together with the freshness calculator,
// the rule-based suggestion engine, and the consumption applier.
//
// The Store is the only owner of the three collections; all mutation is
// routed through its operations and every mutation persists the full
// snapshot best-effort through a Storage implementation.
package fridge
