// Package parking holds the state derivation logic of the SMS parking client:
// tariff lookup, message composition, plate normalization, session tracking
// and the reducer that applies user actions to a State and renders a View.
//
// Nothing in this package performs I/O or reads the clock; callers pass the
// tariff table and the current instant explicitly.
package parking
