// Package ui provides the Bubble Tea TUI for the seller dashboard.
package ui

import (
	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

// Message types for TUI updates

// ListingsMsg carries the result of a page fetch. Seq is the request
// sequence number; responses arriving out of order are dropped so rapid
// pagination never applies a stale page.
type ListingsMsg struct {
	Seq    uint64
	Page   catalog.Page
	Filter catalog.Filter
	Err    error
}

// ExportDoneMsg is sent when an XLSX export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// ToastMsg pushes a transient notification.
type ToastMsg struct {
	Text  string
	Error bool
}

// TickMsg is sent periodically for animations and toast expiry.
type TickMsg struct{}
