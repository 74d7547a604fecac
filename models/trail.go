// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Trail is the single entity served by the service.
//
// The service never builds a Trail itself: reads pass the stored procedure's
// result rows through as [Row] values, so the JSON keys on the wire are the
// procedure's column names. The type documents the expected shape and is
// what clients decode responses into.
type Trail struct {
	// TrailID is assigned once, by the database, at creation.
	TrailID int64 `json:"TrailID"`

	TrailName string `json:"TrailName"`

	// Length is in kilometres.
	Length float64 `json:"Length"`

	// ElevationGain is in metres.
	ElevationGain *int64 `json:"ElevationGain"`

	// RouteType is a free label such as "Loop", "Out & Back" or
	// "Point to Point"; it is not enforced here.
	RouteType string `json:"RouteType"`

	// Difficulty is a free label such as "Easy", "Moderate" or "Hard".
	Difficulty string `json:"Difficulty"`

	// Duration is in minutes.
	Duration *int64 `json:"Duration"`

	Description *string `json:"Description"`

	// OwnerID identifies the creating user. It is never changed by an update.
	OwnerID int64 `json:"OwnerID"`
}

// TrailRequest is the JSON body of create and update calls.
//
// Every field is a pointer: a field missing from the body stays nil and is
// bound as SQL NULL, leaving required-field checks to the stored procedure.
type TrailRequest struct {
	TrailName     *string  `json:"TrailName"`
	Length        *float64 `json:"Length"`
	ElevationGain *int64   `json:"ElevationGain"`
	RouteType     *string  `json:"RouteType"`
	Difficulty    *string  `json:"Difficulty"`
	Duration      *int64   `json:"Duration"`
	Description   *string  `json:"Description"`

	// OwnerID is only read on create.
	OwnerID *int64 `json:"OwnerID"`
}

// Row is a single result row keyed by column name, already normalized into
// JSON-friendly values.
type Row = map[string]any
