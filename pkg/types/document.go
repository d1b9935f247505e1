// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration and document types used
// across the papergen pipeline stages.
package types

import "time"

// UploadedFile holds a file selected for extraction. It is immutable once
// read; its bytes are not retained after extraction completes.
type UploadedFile struct {
	// Name is the file's base name (e.g. "notes.pdf").
	Name string `json:"name"`

	// MediaType is the declared media type (e.g. "application/pdf").
	MediaType string `json:"media_type"`

	// Bytes is the raw file content.
	Bytes []byte `json:"-"`
}

// ByteSize returns the size of the file content in bytes.
func (f UploadedFile) ByteSize() int {
	return len(f.Bytes)
}

// GeneratedDocument is the outcome of one successful generation call. Only
// SanitizedMarkup is ever handed to previewers or exporters. A new call
// replaces the document atomically; there is exactly one slot.
type GeneratedDocument struct {
	// RawModelText is the model's response before sanitization.
	RawModelText string `json:"-"`

	// SanitizedMarkup is the canonical markup with executable content removed.
	SanitizedMarkup string `json:"sanitized_markup"`
}

// StoredDocument is a document persisted in the document store.
type StoredDocument struct {
	// ID is the store-assigned document identifier.
	ID string `json:"id" yaml:"id"`

	// UserID identifies the owning user.
	UserID string `json:"user_id" yaml:"user_id"`

	// Title is the user-chosen document title.
	Title string `json:"title" yaml:"title"`

	// Template records which template produced the document.
	Template TemplateKind `json:"template" yaml:"template"`

	// Content is the sanitized markup.
	Content string `json:"content" yaml:"content"`

	// UserInput is the topic text the document was generated from.
	UserInput string `json:"user_input" yaml:"user_input"`

	// CreatedAt is the save timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
