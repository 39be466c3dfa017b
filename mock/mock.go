// Package mock provides function-field test doubles for the rescribe
// service interfaces.
package mock
