// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the payload forwarded to the remote auth service.
// It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
