// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the trail
// service layers: JSON response writing, the resty HTTP client wrapper,
// keyed blake2b hashing and UUID generation for trace ids.
package utils
