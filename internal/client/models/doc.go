// Package models defines the journal data carried between the client core,
// the HTTP API and the terminal front end.
package models
