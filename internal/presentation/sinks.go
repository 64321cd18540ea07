// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presentation describes the display targets the client writes to.
//
// Every target is optional: a [Surface] field left nil is skipped without
// error, so a front end only wires the targets it actually has.
package presentation

// TextSink displays a line of text.
type TextSink interface {
	SetText(text string)
}

// InputSink is an editable field whose value can be pre-filled.
type InputSink interface {
	SetValue(value string)
}

// ImageSink displays an image by reference (URL or path).
type ImageSink interface {
	SetSource(src string)
}

// ErrorSink displays a user-facing error message.
type ErrorSink interface {
	ShowError(message string)
}

// SubmitSink is a form's submit control. While busy it is disabled and
// labelled [LabelBusy]; otherwise it is enabled and labelled [LabelIdle].
type SubmitSink interface {
	SetBusy(busy bool)
}

// Submit control labels.
const (
	LabelIdle = "Submit"
	LabelBusy = "Loading..."
)
